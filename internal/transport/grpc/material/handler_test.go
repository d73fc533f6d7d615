package material

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/murkotick/material-tracking-service/internal/app/material/queries/change_summary"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_project"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/list_materials"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/project_summary"
	"github.com/murkotick/material-tracking-service/internal/app/material/repo"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/confirm_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_project"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/update_material"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite/sqlitetest"
	"github.com/murkotick/material-tracking-service/internal/transport/grpc/server"
	materialv1 "github.com/murkotick/material-tracking-service/pkg/api/material/v1"
)

type harness struct {
	client  materialv1.MaterialServiceClient
	health  healthpb.HealthClient
	clock   *clock.FakeClock
	metrics *prometheus.Registry
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := sqlitetest.Open(t)
	rm := sqlite.NewReadModel(db)
	cm := sqlite.NewCommitter(db)
	clk := clock.NewFake(time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC))

	materialRepo := repo.NewMaterialRepo()
	historyRepo := repo.NewHistoryRepo()
	outboxRepo := repo.NewOutboxRepo()

	h := NewHandler(Commands{
		CreateProject:  create_project.NewInteractor(repo.NewProjectRepo(), outboxRepo, cm, clk),
		CreateMaterial: create_material.NewInteractor(materialRepo, outboxRepo, cm, rm, clk),
		UpdateMaterial: update_material.NewInteractor(materialRepo, historyRepo, outboxRepo, cm, rm, clk),
		Confirm:        confirm_material.NewInteractor(materialRepo, historyRepo, outboxRepo, cm, rm, clk),
	}, Queries{
		GetProject:     get_project.NewHandler(rm),
		GetMaterial:    get_material.NewHandler(rm),
		ListMaterials:  list_materials.NewHandler(rm),
		ProjectSummary: project_summary.NewHandler(rm),
		ChangeSummary:  change_summary.NewHandler(rm),
	})

	reg := prometheus.NewRegistry()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := server.New(log, server.NewMetrics(reg), h)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &harness{
		client:  materialv1.NewMaterialServiceClient(conn),
		health:  healthpb.NewHealthClient(conn),
		clock:   clk,
		metrics: reg,
	}
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, status.Code(err), err.Error())
}

func TestMaterialFlow(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	proj, err := h.client.CreateProject(ctx, &materialv1.CreateProjectRequest{Name: "Cabin", ActingUserId: "u1"})
	require.NoError(t, err)

	gotProject, err := h.client.GetProject(ctx, &materialv1.GetProjectRequest{ProjectId: proj.ProjectId})
	require.NoError(t, err)
	assert.Equal(t, "planning", gotProject.Project.Status)

	price := 4.0
	created, err := h.client.CreateMaterial(ctx, &materialv1.CreateMaterialRequest{
		ProjectId: proj.ProjectId, Name: "Timber", Quantity: 20, Unit: "m", Price: &price, ActingUserId: "u1",
	})
	require.NoError(t, err)

	h.clock.Advance(time.Hour)
	updated, err := h.client.UpdateMaterial(ctx, &materialv1.UpdateMaterialRequest{
		MaterialId:   created.MaterialId,
		Changes:      map[string]interface{}{"quantity": 25.0, "status": "ordered", "price": nil},
		ActingUserId: "u2",
	})
	require.NoError(t, err)
	m := updated.Material
	assert.False(t, m.Confirmed)
	assert.True(t, m.Ordered)
	assert.False(t, m.Delivered)
	assert.Nil(t, m.Price)
	require.Len(t, m.History, 3)
	assert.Equal(t, "quantity", m.History[0].Field)
	assert.Equal(t, "price", m.History[1].Field)
	assert.Nil(t, m.History[1].NewValue)
	assert.Equal(t, "status", m.History[2].Field)

	summary, err := h.client.GetChangeSummary(ctx, &materialv1.GetChangeSummaryRequest{MaterialId: created.MaterialId})
	require.NoError(t, err)
	assert.Equal(t, "quantity: 20 → 25, price: 4 → none, status: pending → ordered", summary.Summary)
	assert.Equal(t, int32(3), summary.PendingChanges)

	ps, err := h.client.GetProjectSummary(ctx, &materialv1.GetProjectSummaryRequest{ProjectId: proj.ProjectId})
	require.NoError(t, err)
	assert.Equal(t, int32(1), ps.Summary.TotalMaterials)
	assert.Equal(t, int32(1), ps.Summary.OrderedMaterials)
	assert.Equal(t, int32(1), ps.Summary.RecentChanges)
	assert.Equal(t, int32(1), ps.Summary.UnpricedMaterials)

	h.clock.Advance(time.Hour)
	confirmed, err := h.client.ConfirmMaterial(ctx, &materialv1.ConfirmMaterialRequest{MaterialId: created.MaterialId, ActingUserId: "u3"})
	require.NoError(t, err)
	assert.True(t, confirmed.Material.Confirmed)
	for _, e := range confirmed.Material.History {
		assert.True(t, e.Confirmed)
		assert.Equal(t, "u3", e.ConfirmedBy)
		assert.Equal(t, "2024-07-01T10:00:00Z", e.ConfirmedAt)
	}

	got, err := h.client.GetMaterial(ctx, &materialv1.GetMaterialRequest{MaterialId: created.MaterialId})
	require.NoError(t, err)
	assert.Equal(t, confirmed.Material, got.Material)

	list, err := h.client.ListMaterials(ctx, &materialv1.ListMaterialsRequest{ProjectId: proj.ProjectId})
	require.NoError(t, err)
	require.Len(t, list.Materials, 1)
	assert.Empty(t, list.Materials[0].History)
	assert.Empty(t, list.NextPageToken)

	assert.Equal(t, 1.0, h.requestCount(t, materialv1.MaterialService_ConfirmMaterial_FullMethodName, "OK"))
}

// requestCount reads materials_grpc_requests_total for one method and code.
func (h *harness) requestCount(t *testing.T, method, code string) float64 {
	t.Helper()
	mfs, err := h.metrics.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != "materials_grpc_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == method && labels["code"] == code {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestListMaterials_Pagination(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	proj, err := h.client.CreateProject(ctx, &materialv1.CreateProjectRequest{Name: "Cabin", ActingUserId: "u1"})
	require.NoError(t, err)
	for _, name := range []string{"C", "A", "B"} {
		_, err := h.client.CreateMaterial(ctx, &materialv1.CreateMaterialRequest{ProjectId: proj.ProjectId, Name: name, Quantity: 1, ActingUserId: "u1"})
		require.NoError(t, err)
	}

	page, err := h.client.ListMaterials(ctx, &materialv1.ListMaterialsRequest{ProjectId: proj.ProjectId, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Materials, 2)
	assert.Equal(t, "A", page.Materials[0].Name)
	assert.Equal(t, "2", page.NextPageToken)

	page, err = h.client.ListMaterials(ctx, &materialv1.ListMaterialsRequest{ProjectId: proj.ProjectId, PageSize: 2, PageToken: page.NextPageToken})
	require.NoError(t, err)
	require.Len(t, page.Materials, 1)
	assert.Equal(t, "C", page.Materials[0].Name)
	assert.Empty(t, page.NextPageToken)

	cancelled := "cancelled"
	page, err = h.client.ListMaterials(ctx, &materialv1.ListMaterialsRequest{ProjectId: proj.ProjectId, Status: &cancelled})
	require.NoError(t, err)
	assert.Empty(t, page.Materials)
}

func TestErrorMapping(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.client.GetMaterial(ctx, &materialv1.GetMaterialRequest{MaterialId: "mat_missing"})
	requireCode(t, err, codes.NotFound)

	_, err = h.client.ListMaterials(ctx, &materialv1.ListMaterialsRequest{ProjectId: "prj_missing"})
	requireCode(t, err, codes.NotFound)

	_, err = h.client.CreateProject(ctx, &materialv1.CreateProjectRequest{Name: "x"})
	requireCode(t, err, codes.InvalidArgument)

	proj, err := h.client.CreateProject(ctx, &materialv1.CreateProjectRequest{Name: "Cabin", ActingUserId: "u1"})
	require.NoError(t, err)
	_, err = h.client.CreateMaterial(ctx, &materialv1.CreateMaterialRequest{ProjectId: proj.ProjectId, Name: "Nails", Quantity: -3, ActingUserId: "u1"})
	requireCode(t, err, codes.InvalidArgument)

	created, err := h.client.CreateMaterial(ctx, &materialv1.CreateMaterialRequest{ProjectId: proj.ProjectId, Name: "Nails", Quantity: 3, ActingUserId: "u1"})
	require.NoError(t, err)

	_, err = h.client.UpdateMaterial(ctx, &materialv1.UpdateMaterialRequest{MaterialId: created.MaterialId, ActingUserId: "u1"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = h.client.UpdateMaterial(ctx, &materialv1.UpdateMaterialRequest{
		MaterialId: created.MaterialId, Changes: map[string]interface{}{"confirmed": true}, ActingUserId: "u1",
	})
	requireCode(t, err, codes.InvalidArgument)

	_, err = h.client.UpdateMaterial(ctx, &materialv1.UpdateMaterialRequest{
		MaterialId: created.MaterialId, Changes: map[string]interface{}{"quantity": "many"}, ActingUserId: "u1",
	})
	requireCode(t, err, codes.InvalidArgument)

	_, err = h.client.UpdateMaterial(ctx, &materialv1.UpdateMaterialRequest{
		MaterialId: created.MaterialId, Changes: map[string]interface{}{"unit": []interface{}{"a"}}, ActingUserId: "u1",
	})
	requireCode(t, err, codes.InvalidArgument)

	_, err = h.client.ListMaterials(ctx, &materialv1.ListMaterialsRequest{ProjectId: proj.ProjectId, PageToken: "abc"})
	requireCode(t, err, codes.InvalidArgument)

	shipped := "shipped"
	_, err = h.client.ListMaterials(ctx, &materialv1.ListMaterialsRequest{ProjectId: proj.ProjectId, Status: &shipped})
	requireCode(t, err, codes.InvalidArgument)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: materialv1.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

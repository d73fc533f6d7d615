package export

import (
	"context"
	"fmt"
	"log/slog"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/app/material/dto"
	shared "github.com/murkotick/material-tracking-service/internal/app/material/usecases/shared"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
)

// Exporter loads a project through the read model and ships its workbook to a sink.
type Exporter struct {
	ReadModel contracts.ReadModel
	Sink      Sink
	Clock     clock.Clock
	Log       *slog.Logger
}

func NewExporter(rm contracts.ReadModel, sink Sink, clk clock.Clock, log *slog.Logger) *Exporter {
	return &Exporter{ReadModel: rm, Sink: sink, Clock: clk, Log: log}
}

// Export writes the workbook of projectID and returns its location.
func (e *Exporter) Export(ctx context.Context, projectID string) (string, error) {
	p, err := e.ReadModel.GetProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	list, err := e.ReadModel.ListMaterials(ctx, projectID, nil, 0, 0)
	if err != nil {
		return "", err
	}

	// the list omits history, fetch each material in full
	full := make([]*dto.MaterialDTO, 0, len(list))
	for _, m := range list {
		d, err := e.ReadModel.GetMaterial(ctx, m.MaterialID)
		if err != nil {
			return "", fmt.Errorf("load material %s: %w", m.MaterialID, err)
		}
		full = append(full, d)
	}

	project, err := shared.ProjectFromDTO(p, full)
	if err != nil {
		return "", err
	}
	data, err := BuildWorkbook(project)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("materials_%s_%s.xlsx", project.ID(), e.Clock.Now().Format("20060102_150405"))
	location, err := e.Sink.Put(ctx, name, data)
	if err != nil {
		return "", err
	}
	e.Log.InfoContext(ctx, "project exported",
		slog.String("project_id", project.ID()),
		slog.Int("materials", len(full)),
		slog.String("location", location),
	)
	return location, nil
}

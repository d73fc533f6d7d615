package committer

// Op is the kind of row mutation carried by a Write.
type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
)

// Write is a storage-neutral row mutation. Values always contain KeyColumn.
// Adapters translate writes into Spanner mutations or SQL statements.
type Write struct {
	Op        Op
	Table     string
	KeyColumn string
	Values    map[string]interface{}
}

// Key returns the primary key value of the row.
func (w *Write) Key() interface{} {
	return w.Values[w.KeyColumn]
}

// Plan is an ordered batch of writes applied in one transaction.
type Plan struct {
	writes []*Write
}

func NewPlan() *Plan {
	return &Plan{
		writes: make([]*Write, 0),
	}
}

func (p *Plan) Add(w *Write) {
	if w == nil {
		return
	}
	p.writes = append(p.writes, w)
}

// AddAll adds every non-nil write.
func (p *Plan) AddAll(ws []*Write) {
	for _, w := range ws {
		p.Add(w)
	}
}

func (p *Plan) IsEmpty() bool {
	return len(p.writes) == 0
}

func (p *Plan) Writes() []*Write {
	return p.writes
}

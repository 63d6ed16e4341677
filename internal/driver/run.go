// Package driver implements the statement driver (spec.md's component K):
// the glue from a bound statement through planning, optimization, and
// physical execution, plus the per-statement error boundary and EXPLAIN
// output (spec.md §6.2, §7).
//
// Grounded on the teacher's engine.go Query/QueryWithBindings methods for
// the parse→analyze→plan→execute pipeline shape, trimmed to this core's
// scope: no vitess bindings, no prepared statement cache, no transactions.
package driver

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/binder"
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/config"
	"github.com/andb/andb/internal/logging"
	"github.com/andb/andb/internal/physical"
	"github.com/andb/andb/internal/plan"
)

// Driver binds one Catalog and Config to repeated statement execution.
type Driver struct {
	Cat *catalog.Catalog
	Cfg config.Config
}

// New builds a Driver over cat with the given configuration.
func New(cat *catalog.Catalog, cfg config.Config) *Driver {
	return &Driver{Cat: cat, Cfg: cfg}
}

// Result is the outcome of running one statement: the produced rows (each a
// deep copy, so the catalog remains authoritative — spec.md §5's ownership
// rule) and, when Cfg.Explain is set, the rendered EXPLAIN text.
type Result struct {
	Rows    []catalog.Row
	Explain string
}

// Run executes stmt end to end: Bind -> CreatePlan -> Optimize -> Open/Exec/
// Close (spec.md §2's control flow), inside one error boundary. A returned
// error is always one of the errs.Kind sentinels; Run itself never panics a
// statement failure out to the caller.
func (d *Driver) Run(query string, stmt *ast.SelectStmt) (Result, error) {
	start := time.Now()

	b := binder.New(d.Cat)
	if err := b.Bind(stmt); err != nil {
		logging.Log.WithError(err).WithField("query", query).Warn("bind failed")
		return Result{}, err
	}

	logicalPlan, err := plan.CreatePlan(stmt)
	if err != nil {
		logging.Log.WithError(err).WithField("query", query).Warn("planning failed")
		return Result{}, err
	}

	physicalPlan, err := physical.Optimize(logicalPlan)
	if err != nil {
		logging.Log.WithError(err).WithField("query", query).Warn("optimization failed")
		return Result{}, err
	}

	var explainText string
	if d.Cfg.Explain {
		explainText = ExplainStmt(stmt, physicalPlan)
	}

	rows, err := execute(physicalPlan)
	if err != nil {
		logging.Log.WithError(err).WithField("query", query).Warn("execution failed")
		return Result{}, err
	}

	logging.Log.WithFields(logrus.Fields{
		"query":    query,
		"duration": time.Since(start),
		"rows":     len(rows),
	}).Info("statement complete")

	return Result{Rows: rows, Explain: explainText}, nil
}

// execute opens physicalPlan, drains it via the callback protocol into a
// plain slice (deep-copying each row), and closes it on every exit path,
// including when Exec itself errors (spec.md §4.5, §5's scoped-resource
// guarantee).
func execute(p physical.Physical) ([]catalog.Row, error) {
	if p == nil {
		return nil, nil
	}

	if err := p.Open(); err != nil {
		return nil, err
	}
	defer p.Close()

	var rows []catalog.Row
	err := p.Exec(func(row *catalog.Row) error {
		if row == nil {
			return nil
		}
		rows = append(rows, row.Clone())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

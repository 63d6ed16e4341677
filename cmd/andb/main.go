// Command andb is a thin stand-in entrypoint for the out-of-scope
// interactive/batch CLI (spec.md §6.1 describes its flags but the read
// loop, option parsing, and pretty printing are explicitly not
// respecified). It exists only to give the module something that links
// internal/driver end to end: it seeds the catalog, runs one hard-coded
// statement through the driver, and prints the rows.
package main

import (
	"fmt"
	"os"

	"github.com/andb/andb/internal/ast"
	"github.com/andb/andb/internal/catalog"
	"github.com/andb/andb/internal/config"
	"github.com/andb/andb/internal/driver"
	"github.com/andb/andb/internal/expr"
)

func main() {
	cat := catalog.New()
	cat.Init()
	defer cat.Deinit()

	// select a1 from a where a1 <= 1
	stmt := &ast.SelectStmt{
		From: []ast.TableRef{ast.NewBaseTableRef("a", "")},
		Selection: []expr.Expr{
			expr.NewColExpr("a1", ""),
		},
		Where: expr.NewBinExpr(expr.Leq,
			expr.NewColExpr("a1", ""),
			expr.NewConst(catalog.NewInt32(1))),
	}

	d := driver.New(cat, config.Config{Explain: true})
	result, err := d.Run("select a1 from a where a1 <= 1", stmt)
	if err != nil {
		fmt.Fprintln(os.Stderr, driver.FormatError("select a1 from a where a1 <= 1", err))
		os.Exit(1)
	}

	fmt.Println(result.Explain)
	for _, row := range result.Rows {
		for i := 0; i < row.Len(); i++ {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(row.At(i).ToString())
		}
		fmt.Println()
	}
}

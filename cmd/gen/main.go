// Command gen writes the typed gorm/gen query package for the persistence models.
package main

import (
	"flag"

	"dietplan/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	out := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory of the query package")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *out,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable: true,
	})

	g.ApplyBasic(model.All()...)
	g.Execute()
}

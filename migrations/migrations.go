// Package migrations embebe las migraciones SQL del esquema para
// aplicarlas con goose al arrancar el servicio.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

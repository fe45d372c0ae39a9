// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the goose migration files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

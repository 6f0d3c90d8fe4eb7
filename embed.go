// Package qcscargo holds assets embedded into the service binary.
package qcscargo

import "embed"

// Migrations contains the goose SQL migrations of the service schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Package migrations содержит схему хранилища регистраций для каждого драйвера.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

package database

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrations, binary'ye gömülü migration dosyalarını migrations/ alt
// dizini kök olacak şekilde döner. New'e doğrudan verilebilir.
func Migrations() fs.FS {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		// Sadece embed pattern'i bozulursa olur, derleme zamanı hatası sayılır.
		panic(err)
	}
	return sub
}

// Package main — Repository katmanı başlatma.
//
// initRepositories, repository implementasyonlarını oluşturur.
// Her repository bir *sql.DB bağlantısı alır ve interface döner.
package main

import (
	"database/sql"

	"github.com/akinalp/calculator/repository"
)

// Repositories, repository instance'larını tutan container struct.
type Repositories struct {
	Calculation repository.CalculationRepository
}

// initRepositories, repository'leri oluşturur.
func initRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Calculation: repository.NewSQLiteCalculationRepo(db),
	}
}

// Package models contains the GORM persistence models of the sales ledger
// and the forecast store. Domain packages never see these types; repositories
// map them to read models at the boundary.
package models

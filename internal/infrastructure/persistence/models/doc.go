// Package models contains the GORM database models of the persistence layer.
package models

// Package persistence implements the key-pair domain's SecureStore contract
// on top of GORM, with sqlite (local credential database) and postgres
// (service deployment) drivers.
package persistence

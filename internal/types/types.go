// internal/types/types.go
package types

// EntityID: идентификатор сущности в пределах одного раунда.
type EntityID uint32

package models

// Tenant represents a row of the tenants table.
type Tenant struct {
	TenantID         string `db:"tenant_id"`
	Slug             string `db:"slug"`
	Name             string `db:"name"`
	IsActive         bool   `db:"is_active"`
	NextReferenceSeq int    `db:"next_reference_seq"`
	AuditFields
}

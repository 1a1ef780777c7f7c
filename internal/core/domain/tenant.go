package domain

// MaxReferenceSeq is the largest payment identifier a tenant can hand out.
// Identifiers are printed on bank transfers, so they stay at four digits.
const MaxReferenceSeq = 9999

// Tenant represents one club. All enrollment and ledger data is scoped to a tenant.
type Tenant struct {
	TenantID         string `json:"tenantID"`         // Primary Key (UUID)
	Slug             string `json:"slug"`             // URL-safe unique name, e.g. "dipoli"
	Name             string `json:"name"`             // Display name
	IsActive         bool   `json:"isActive"`         // Disabled tenants reject writes
	NextReferenceSeq int    `json:"nextReferenceSeq"` // Next child payment identifier to allocate
	AuditFields
}

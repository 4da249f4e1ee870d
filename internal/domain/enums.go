package domain

import "fmt"

// Role represents the authorization level of an identity.
type Role string

const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a token claim into a Role.
// An empty claim is treated as MEMBER; any other unknown value is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleMember, nil
	case RoleMember, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeMentor EntityType = "MENTOR"
	EntityTypeEvent  EntityType = "EVENT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeMentor, EntityTypeEvent:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionRevoke  AuditAction = "REVOKE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionApprove, AuditActionRevoke:
		return true
	}
	return false
}

// TagKind distinguishes the two reference vocabularies a mentor can be tagged with.
type TagKind string

const (
	TagKindIndustry  TagKind = "INDUSTRY"
	TagKindExpertise TagKind = "EXPERTISE"
)

func (k TagKind) String() string { return string(k) }

func (k TagKind) IsValid() bool {
	switch k {
	case TagKindIndustry, TagKindExpertise:
		return true
	}
	return false
}

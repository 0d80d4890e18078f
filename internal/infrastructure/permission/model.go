package permission

// rbacModel grants a role the (resource, action) pairs of its policies and of
// every role it inherits.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Resources.
const (
	ResourceTenant        = "tenant"
	ResourceUser          = "user"
	ResourceAccessRequest = "access_request"
	ResourceCase          = "case"
	ResourceDocument      = "document"
	ResourceFiling        = "filing"
	ResourceAgent         = "agent"
	ResourceOrganization  = "organization"
	ResourceDashboard     = "dashboard"
	ResourceAudit         = "audit"
)

// Actions.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionDelete = "delete"
	ActionReview = "review"
	ActionTest   = "test"
)

// DefaultPolicies is the seeded policy set. Admins inherit every member
// policy through the role link.
func DefaultPolicies() [][]string {
	return [][]string{
		{RoleMember, ResourceTenant, ActionRead},
		{RoleMember, ResourceCase, ActionRead},
		{RoleMember, ResourceCase, ActionWrite},
		{RoleMember, ResourceCase, ActionDelete},
		{RoleMember, ResourceDocument, ActionRead},
		{RoleMember, ResourceDocument, ActionWrite},
		{RoleMember, ResourceDocument, ActionDelete},
		{RoleMember, ResourceFiling, ActionRead},
		{RoleMember, ResourceFiling, ActionWrite},
		{RoleMember, ResourceFiling, ActionDelete},
		{RoleMember, ResourceAgent, ActionRead},
		{RoleMember, ResourceAgent, ActionTest},
		{RoleMember, ResourceOrganization, ActionRead},
		{RoleMember, ResourceOrganization, ActionWrite},
		{RoleMember, ResourceDashboard, ActionRead},

		{RoleAdmin, ResourceTenant, ActionWrite},
		{RoleAdmin, ResourceUser, ActionRead},
		{RoleAdmin, ResourceUser, ActionWrite},
		{RoleAdmin, ResourceUser, ActionDelete},
		{RoleAdmin, ResourceAccessRequest, ActionRead},
		{RoleAdmin, ResourceAccessRequest, ActionReview},
		{RoleAdmin, ResourceAgent, ActionWrite},
		{RoleAdmin, ResourceAgent, ActionDelete},
		{RoleAdmin, ResourceAudit, ActionRead},
	}
}

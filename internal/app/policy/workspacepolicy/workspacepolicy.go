// Package workspacepolicy centralizes the authorization rules for the
// shared workspace and account administration.
//
// Authorization rules:
//   - Management can manage the roster, delete tasks, read the activity
//     log, list accounts, and delete accounts
//   - Team members can work with tasks, comments, and messages, but not
//     the operations above
//   - Everyone signed in can read the workspace and their own profile
package workspacepolicy

import (
	"github.com/devflowhq/devflow/internal/domain/models"
)

// ManageRosterRoles lists the roles allowed to add and remove members.
func ManageRosterRoles() []string {
	return []string{models.RoleManagement}
}

// DeleteTaskRoles lists the roles allowed to delete tasks. Creating,
// editing, and toggling stay open to every signed-in caller.
func DeleteTaskRoles() []string {
	return []string{models.RoleManagement}
}

// ViewActivityRoles lists the roles allowed to read the activity log.
func ViewActivityRoles() []string {
	return []string{models.RoleManagement}
}

// AdministerAccountsRoles lists the roles allowed to list and delete
// user accounts.
func AdministerAccountsRoles() []string {
	return []string{models.RoleManagement}
}

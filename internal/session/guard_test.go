package session

import (
	"testing"

	"gestao/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func snapshotWith(state State, role *entity.Role) Snapshot {
	return Snapshot{State: state, Role: role}
}

func rolePtr(role entity.Role) *entity.Role {
	return &role
}

func TestDecideTable(t *testing.T) {
	anyStaff := entity.Roles{entity.RoleAdmin, entity.RolePsicologo, entity.RoleGestor}
	adminOnly := entity.Roles{entity.RoleAdmin}

	tests := []struct {
		name     string
		snapshot Snapshot
		allowed  entity.Roles
		want     Decision
	}{
		{
			name:     "uninitialized renders loading",
			snapshot: snapshotWith(StateUninitialized, nil),
			allowed:  anyStaff,
			want:     DecisionLoading,
		},
		{
			name:     "loading renders loading",
			snapshot: snapshotWith(StateLoading, nil),
			allowed:  nil,
			want:     DecisionLoading,
		},
		{
			name:     "unauthenticated redirects to sign-in",
			snapshot: snapshotWith(StateUnauthenticated, nil),
			allowed:  adminOnly,
			want:     DecisionRedirectSignIn,
		},
		{
			name:     "no role shows pending approval regardless of allowed set",
			snapshot: snapshotWith(StateAuthenticatedNoRole, nil),
			allowed:  nil,
			want:     DecisionPendingApproval,
		},
		{
			name:     "no role shows pending approval for admin-only routes",
			snapshot: snapshotWith(StateAuthenticatedNoRole, nil),
			allowed:  adminOnly,
			want:     DecisionPendingApproval,
		},
		{
			name:     "empty allowed set admits any authenticated role",
			snapshot: snapshotWith(StateAuthenticatedWithRole, rolePtr(entity.RolePedagogo)),
			allowed:  nil,
			want:     DecisionRender,
		},
		{
			name:     "psychologist admitted to psychology routes",
			snapshot: snapshotWith(StateAuthenticatedWithRole, rolePtr(entity.RolePsicologo)),
			allowed:  anyStaff,
			want:     DecisionRender,
		},
		{
			name:     "psychologist redirected from admin-only routes",
			snapshot: snapshotWith(StateAuthenticatedWithRole, rolePtr(entity.RolePsicologo)),
			allowed:  adminOnly,
			want:     DecisionRedirectLanding,
		},
		{
			name:     "manager redirected from social-work-only route",
			snapshot: snapshotWith(StateAuthenticatedWithRole, rolePtr(entity.RolePedagogo)),
			allowed:  entity.Roles{entity.RoleAdmin, entity.RoleAssistenteSocial, entity.RoleGestor},
			want:     DecisionRedirectLanding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.snapshot, tt.allowed))
		})
	}
}

func TestDecideCoversEveryStateTimesAllowedSet(t *testing.T) {
	states := []State{
		StateUninitialized,
		StateLoading,
		StateUnauthenticated,
		StateAuthenticatedNoRole,
		StateAuthenticatedWithRole,
	}
	allowedSets := []entity.Roles{
		nil,
		{entity.RoleAdmin},
		{entity.RoleAdmin, entity.RolePsicologo, entity.RoleGestor},
		entity.AllRoles(),
	}

	for _, state := range states {
		for _, allowed := range allowedSets {
			snap := snapshotWith(state, rolePtr(entity.RoleGestor))
			decision := Decide(snap, allowed)

			switch state {
			case StateUninitialized, StateLoading:
				assert.Equal(t, DecisionLoading, decision)
			case StateUnauthenticated:
				assert.Equal(t, DecisionRedirectSignIn, decision)
			case StateAuthenticatedNoRole:
				assert.Equal(t, DecisionPendingApproval, decision)
			case StateAuthenticatedWithRole:
				if len(allowed) == 0 || allowed.Contains(entity.RoleGestor) {
					assert.Equal(t, DecisionRender, decision)
				} else {
					assert.Equal(t, DecisionRedirectLanding, decision)
				}
			}
		}
	}
}

package hierarchy

import (
	"github.com/google/uuid"

	"github.com/rodrigospisila/parish-backend/internals/constants"
)

// Principal is the authenticated identity every scope decision runs
// against: role plus whichever scope ids the token carried.
type Principal struct {
	ID          uuid.UUID
	Role        string
	DioceseID   *uuid.UUID
	ParishID    *uuid.UUID
	CommunityID *uuid.UUID
}

// ScopeChain is a resource's position in the containment tree, resolved by
// walking its references up to the diocese. Zero-value fields mean the link
// is absent (e.g. a diocese only has its own id).
type ScopeChain struct {
	DioceseID   uuid.UUID
	ParishID    uuid.UUID
	CommunityID uuid.UUID

	// CoordinatedPastoral is set when the principal coordinates a pastoral
	// linked to the resource (events only).
	CoordinatedPastoral bool
	// SelfOwned is set when the resource belongs to the principal's own
	// member record (schedule-assignment self-service).
	SelfOwned bool
	// AllowCommunityPeers lets VOLUNTEER/FAITHFUL pass on community match
	// (event visibility); false for manage-style checks.
	AllowCommunityPeers bool
}

// decide applies the role→scope table as a boolean. It is the single source
// of truth for the write path; the read-path filters are its query-shaped
// dual and must stay consistent with it.
func decide(p Principal, chain ScopeChain) bool {
	if chain.SelfOwned {
		return true
	}

	switch p.Role {
	case constants.RoleSystemAdmin:
		return true
	case constants.RoleDiocesanAdmin:
		return p.DioceseID != nil && chain.DioceseID != uuid.Nil && *p.DioceseID == chain.DioceseID
	case constants.RoleParishAdmin:
		return p.ParishID != nil && chain.ParishID != uuid.Nil && *p.ParishID == chain.ParishID
	case constants.RoleCommunityCoordinator:
		return p.CommunityID != nil && chain.CommunityID != uuid.Nil && *p.CommunityID == chain.CommunityID
	case constants.RolePastoralCoordinator:
		if chain.CoordinatedPastoral {
			return true
		}
		return chain.AllowCommunityPeers &&
			p.CommunityID != nil && chain.CommunityID != uuid.Nil && *p.CommunityID == chain.CommunityID
	case constants.RoleVolunteer, constants.RoleFaithful:
		return chain.AllowCommunityPeers &&
			p.CommunityID != nil && chain.CommunityID != uuid.Nil && *p.CommunityID == chain.CommunityID
	default:
		return false
	}
}

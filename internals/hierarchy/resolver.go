package hierarchy

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
)

// ErrNotFound is returned before any role comparison when the target row is
// absent, so callers can answer 404 without leaking whether the row exists
// inside someone else's scope.
var ErrNotFound = errors.New("resource not found")

// Resolver is the single place scope and permission decisions are made.
// Controllers must not re-implement any of this inline.
type Resolver struct {
	DB *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{DB: db}
}

// denyAll fails closed: a privileged role whose scope id is missing gets an
// empty result set, never an unrestricted one.
func denyAll(q *gorm.DB) *gorm.DB {
	return q.Where("1 = 0")
}

/* ===============================
   Read path: query filters
================================= */

func (r *Resolver) ScopeDioceses(q *gorm.DB, p Principal) *gorm.DB {
	switch p.Role {
	case constants.RoleSystemAdmin:
		return q
	case constants.RoleDiocesanAdmin:
		if p.DioceseID == nil {
			return denyAll(q)
		}
		return q.Where("diocese_id = ?", *p.DioceseID)
	default:
		if p.DioceseID != nil {
			return q.Where("diocese_id = ?", *p.DioceseID)
		}
		return denyAll(q)
	}
}

func (r *Resolver) ScopeParishes(q *gorm.DB, p Principal) *gorm.DB {
	switch p.Role {
	case constants.RoleSystemAdmin:
		return q
	case constants.RoleDiocesanAdmin:
		if p.DioceseID == nil {
			return denyAll(q)
		}
		return q.Where("parish_diocese_id = ?", *p.DioceseID)
	default:
		if p.ParishID != nil {
			return q.Where("parish_id = ?", *p.ParishID)
		}
		if p.CommunityID != nil {
			return q.Joins("JOIN communities ON communities.community_parish_id = parishes.parish_id").
				Where("communities.community_id = ?", *p.CommunityID)
		}
		return denyAll(q)
	}
}

func (r *Resolver) ScopeCommunities(q *gorm.DB, p Principal) *gorm.DB {
	switch p.Role {
	case constants.RoleSystemAdmin:
		return q
	case constants.RoleDiocesanAdmin:
		if p.DioceseID == nil {
			return denyAll(q)
		}
		return q.Joins("JOIN parishes ON parishes.parish_id = communities.community_parish_id").
			Where("parishes.parish_diocese_id = ?", *p.DioceseID)
	case constants.RoleParishAdmin:
		if p.ParishID == nil {
			return denyAll(q)
		}
		return q.Where("community_parish_id = ?", *p.ParishID)
	default:
		if p.CommunityID != nil {
			return q.Where("community_id = ?", *p.CommunityID)
		}
		if p.ParishID != nil {
			return q.Where("community_parish_id = ?", *p.ParishID)
		}
		return denyAll(q)
	}
}

// scopeByCommunityColumn handles every table that hangs directly off a
// community (members, events, mass intentions, news, ...).
func (r *Resolver) scopeByCommunityColumn(q *gorm.DB, p Principal, table, column string) *gorm.DB {
	switch p.Role {
	case constants.RoleSystemAdmin:
		return q
	case constants.RoleDiocesanAdmin:
		if p.DioceseID == nil {
			return denyAll(q)
		}
		return q.Joins("JOIN communities ON communities.community_id = "+table+"."+column).
			Joins("JOIN parishes ON parishes.parish_id = communities.community_parish_id").
			Where("parishes.parish_diocese_id = ?", *p.DioceseID)
	case constants.RoleParishAdmin:
		if p.ParishID == nil {
			return denyAll(q)
		}
		return q.Joins("JOIN communities ON communities.community_id = "+table+"."+column).
			Where("communities.community_parish_id = ?", *p.ParishID)
	default:
		if p.CommunityID == nil {
			return denyAll(q)
		}
		return q.Where(table+"."+column+" = ?", *p.CommunityID)
	}
}

func (r *Resolver) ScopeMembers(q *gorm.DB, p Principal) *gorm.DB {
	return r.scopeByCommunityColumn(q, p, "members", "member_community_id")
}

func (r *Resolver) ScopeEvents(q *gorm.DB, p Principal) *gorm.DB {
	return r.scopeByCommunityColumn(q, p, "events", "event_community_id")
}

func (r *Resolver) ScopeCommunityPastorals(q *gorm.DB, p Principal) *gorm.DB {
	return r.scopeByCommunityColumn(q, p, "community_pastorals", "community_pastoral_community_id")
}

func (r *Resolver) ScopeMassIntentions(q *gorm.DB, p Principal) *gorm.DB {
	return r.scopeByCommunityColumn(q, p, "mass_intentions", "mass_intention_community_id")
}

func (r *Resolver) ScopeMassSchedules(q *gorm.DB, p Principal) *gorm.DB {
	return r.scopeByCommunityColumn(q, p, "mass_schedules", "mass_schedule_community_id")
}

func (r *Resolver) ScopeNews(q *gorm.DB, p Principal) *gorm.DB {
	return r.scopeByCommunityColumn(q, p, "news", "news_community_id")
}

func (r *Resolver) ScopePrayerRequests(q *gorm.DB, p Principal) *gorm.DB {
	return r.scopeByCommunityColumn(q, p, "prayer_requests", "prayer_request_community_id")
}

func (r *Resolver) ScopeSchedules(q *gorm.DB, p Principal) *gorm.DB {
	switch p.Role {
	case constants.RoleSystemAdmin:
		return q
	case constants.RoleDiocesanAdmin:
		if p.DioceseID == nil {
			return denyAll(q)
		}
		return q.Joins("JOIN events ON events.event_id = schedules.schedule_event_id").
			Joins("JOIN communities ON communities.community_id = events.event_community_id").
			Joins("JOIN parishes ON parishes.parish_id = communities.community_parish_id").
			Where("parishes.parish_diocese_id = ?", *p.DioceseID)
	case constants.RoleParishAdmin:
		if p.ParishID == nil {
			return denyAll(q)
		}
		return q.Joins("JOIN events ON events.event_id = schedules.schedule_event_id").
			Joins("JOIN communities ON communities.community_id = events.event_community_id").
			Where("communities.community_parish_id = ?", *p.ParishID)
	default:
		if p.CommunityID == nil {
			return denyAll(q)
		}
		return q.Joins("JOIN events ON events.event_id = schedules.schedule_event_id").
			Where("events.event_community_id = ?", *p.CommunityID)
	}
}

func (r *Resolver) ScopeUsers(q *gorm.DB, p Principal) *gorm.DB {
	switch p.Role {
	case constants.RoleSystemAdmin:
		return q
	case constants.RoleDiocesanAdmin:
		if p.DioceseID == nil {
			return denyAll(q)
		}
		return q.Where("diocese_id = ?", *p.DioceseID)
	case constants.RoleParishAdmin:
		if p.ParishID == nil {
			return denyAll(q)
		}
		return q.Where("parish_id = ?", *p.ParishID)
	case constants.RoleCommunityCoordinator:
		if p.CommunityID == nil {
			return denyAll(q)
		}
		return q.Where("community_id = ?", *p.CommunityID)
	default:
		return denyAll(q)
	}
}

/* ===============================
   Write path: boolean checks
================================= */

func (r *Resolver) CanManageDiocese(p Principal, dioceseID uuid.UUID) (bool, error) {
	var count int64
	if err := r.DB.Table("dioceses").Where("diocese_id = ?", dioceseID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, ErrNotFound
	}
	return decide(p, ScopeChain{DioceseID: dioceseID}), nil
}

func (r *Resolver) CanManageParish(p Principal, parishID uuid.UUID) (bool, error) {
	var row struct {
		ParishDioceseID uuid.UUID
	}
	err := r.DB.Table("parishes").Select("parish_diocese_id").
		Where("parish_id = ?", parishID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return decide(p, ScopeChain{DioceseID: row.ParishDioceseID, ParishID: parishID}), nil
}

// communityChain walks community -> parish -> diocese.
func (r *Resolver) communityChain(communityID uuid.UUID) (ScopeChain, error) {
	var row struct {
		CommunityParishID uuid.UUID
		ParishDioceseID   uuid.UUID
	}
	err := r.DB.Table("communities").
		Select("communities.community_parish_id, parishes.parish_diocese_id").
		Joins("JOIN parishes ON parishes.parish_id = communities.community_parish_id").
		Where("communities.community_id = ?", communityID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ScopeChain{}, ErrNotFound
	}
	if err != nil {
		return ScopeChain{}, err
	}
	return ScopeChain{
		DioceseID:   row.ParishDioceseID,
		ParishID:    row.CommunityParishID,
		CommunityID: communityID,
	}, nil
}

func (r *Resolver) CanManageCommunity(p Principal, communityID uuid.UUID) (bool, error) {
	chain, err := r.communityChain(communityID)
	if err != nil {
		return false, err
	}
	return decide(p, chain), nil
}

func (r *Resolver) CanManageMember(p Principal, memberID uuid.UUID) (bool, error) {
	var row struct {
		MemberCommunityID uuid.UUID
	}
	err := r.DB.Table("members").Select("member_community_id").
		Where("member_id = ?", memberID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	chain, err := r.communityChain(row.MemberCommunityID)
	if err != nil {
		return false, err
	}
	return decide(p, chain), nil
}

// eventChain resolves the event's containment chain and, for pastoral
// coordinators, whether the principal coordinates a pastoral linked to the
// event through event_pastorals. This is the one grant that crosses the
// containment tree.
func (r *Resolver) eventChain(p Principal, eventID uuid.UUID) (ScopeChain, error) {
	var row struct {
		EventCommunityID uuid.UUID
	}
	err := r.DB.Table("events").Select("event_community_id").
		Where("event_id = ?", eventID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ScopeChain{}, ErrNotFound
	}
	if err != nil {
		return ScopeChain{}, err
	}

	chain, err := r.communityChain(row.EventCommunityID)
	if err != nil {
		return ScopeChain{}, err
	}

	if p.Role == constants.RolePastoralCoordinator {
		var count int64
		err = r.DB.Table("event_pastorals").
			Joins("JOIN pastoral_members ON pastoral_members.pastoral_member_community_pastoral_id = event_pastorals.event_pastoral_community_pastoral_id").
			Joins("JOIN members ON members.member_id = pastoral_members.pastoral_member_member_id").
			Where("event_pastorals.event_pastoral_event_id = ?", eventID).
			Where("members.member_user_id = ?", p.ID).
			Where("pastoral_members.pastoral_member_role = ?", constants.PastoralRoleCoordinator).
			Where("pastoral_members.pastoral_member_is_active = ?", true).
			Count(&count).Error
		if err != nil {
			return ScopeChain{}, err
		}
		chain.CoordinatedPastoral = count > 0
	}

	return chain, nil
}

func (r *Resolver) CanManageEvent(p Principal, eventID uuid.UUID) (bool, error) {
	chain, err := r.eventChain(p, eventID)
	if err != nil {
		return false, err
	}
	return decide(p, chain), nil
}

// CanViewEvent also lets volunteers and faithful through on a community
// match; managing stays restricted to decide's manage rules.
func (r *Resolver) CanViewEvent(p Principal, eventID uuid.UUID) (bool, error) {
	chain, err := r.eventChain(p, eventID)
	if err != nil {
		return false, err
	}
	chain.AllowCommunityPeers = true
	return decide(p, chain), nil
}

func (r *Resolver) CanManageSchedule(p Principal, scheduleID uuid.UUID) (bool, error) {
	var row struct {
		ScheduleEventID uuid.UUID
	}
	err := r.DB.Table("schedules").Select("schedule_event_id").
		Where("schedule_id = ?", scheduleID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return r.CanManageEvent(p, row.ScheduleEventID)
}

// CanTouchAssignment covers confirm/decline/check-in on a schedule
// assignment: the assignment's own member may always act on it, otherwise
// the event's manage rules apply.
func (r *Resolver) CanTouchAssignment(p Principal, assignmentID uuid.UUID) (bool, error) {
	var row struct {
		ScheduleAssignmentScheduleID uuid.UUID
		ScheduleAssignmentMemberID   uuid.UUID
	}
	err := r.DB.Table("schedule_assignments").
		Select("schedule_assignment_schedule_id, schedule_assignment_member_id").
		Where("schedule_assignment_id = ?", assignmentID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}

	if own, err := r.ownsMember(p, row.ScheduleAssignmentMemberID); err != nil {
		return false, err
	} else if own {
		return true, nil
	}

	var sched struct {
		ScheduleEventID uuid.UUID
	}
	err = r.DB.Table("schedules").Select("schedule_event_id").
		Where("schedule_id = ?", row.ScheduleAssignmentScheduleID).Take(&sched).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return r.CanManageEvent(p, sched.ScheduleEventID)
}

// CanManageCommunityPastoral grants the pastoral's own coordinator in
// addition to the containment chain.
func (r *Resolver) CanManageCommunityPastoral(p Principal, pastoralID uuid.UUID) (bool, error) {
	var row struct {
		CommunityPastoralCommunityID uuid.UUID
	}
	err := r.DB.Table("community_pastorals").Select("community_pastoral_community_id").
		Where("community_pastoral_id = ?", pastoralID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}

	chain, err := r.communityChain(row.CommunityPastoralCommunityID)
	if err != nil {
		return false, err
	}

	if p.Role == constants.RolePastoralCoordinator {
		var count int64
		err = r.DB.Table("pastoral_members").
			Joins("JOIN members ON members.member_id = pastoral_members.pastoral_member_member_id").
			Where("pastoral_members.pastoral_member_community_pastoral_id = ?", pastoralID).
			Where("members.member_user_id = ?", p.ID).
			Where("pastoral_members.pastoral_member_role = ?", constants.PastoralRoleCoordinator).
			Where("pastoral_members.pastoral_member_is_active = ?", true).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		chain.CoordinatedPastoral = count > 0
	}

	return decide(p, chain), nil
}

// CoordinatedPastoralIDs lists the community pastorals the user coordinates.
func (r *Resolver) CoordinatedPastoralIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB.Table("pastoral_members").
		Select("pastoral_members.pastoral_member_community_pastoral_id").
		Joins("JOIN members ON members.member_id = pastoral_members.pastoral_member_member_id").
		Where("members.member_user_id = ?", userID).
		Where("pastoral_members.pastoral_member_role = ?", constants.PastoralRoleCoordinator).
		Where("pastoral_members.pastoral_member_is_active = ?", true).
		Scan(&ids).Error
	return ids, err
}

// OwnsMember reports whether the member record belongs to the principal's
// user account.
func (r *Resolver) OwnsMember(p Principal, memberID uuid.UUID) (bool, error) {
	return r.ownsMember(p, memberID)
}

func (r *Resolver) ownsMember(p Principal, memberID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.Table("members").
		Where("member_id = ? AND member_user_id = ?", memberID, p.ID).
		Count(&count).Error
	return count > 0, err
}

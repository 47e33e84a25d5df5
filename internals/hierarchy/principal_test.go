package hierarchy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rodrigospisila/parish-backend/internals/constants"
)

func ptr(id uuid.UUID) *uuid.UUID { return &id }

func TestDecide(t *testing.T) {
	dioceseA := uuid.New()
	dioceseB := uuid.New()
	parishA := uuid.New()
	parishB := uuid.New()
	communityA := uuid.New()
	communityB := uuid.New()

	chainA := ScopeChain{DioceseID: dioceseA, ParishID: parishA, CommunityID: communityA}

	tests := []struct {
		name  string
		p     Principal
		chain ScopeChain
		want  bool
	}{
		{
			name:  "system admin passes everywhere",
			p:     Principal{Role: constants.RoleSystemAdmin},
			chain: chainA,
			want:  true,
		},
		{
			name:  "diocesan admin matches own diocese",
			p:     Principal{Role: constants.RoleDiocesanAdmin, DioceseID: ptr(dioceseA)},
			chain: chainA,
			want:  true,
		},
		{
			name:  "diocesan admin blocked on other diocese",
			p:     Principal{Role: constants.RoleDiocesanAdmin, DioceseID: ptr(dioceseB)},
			chain: chainA,
			want:  false,
		},
		{
			name:  "diocesan admin without diocese id fails closed",
			p:     Principal{Role: constants.RoleDiocesanAdmin},
			chain: chainA,
			want:  false,
		},
		{
			name:  "diocesan admin fails closed when chain has no diocese",
			p:     Principal{Role: constants.RoleDiocesanAdmin, DioceseID: ptr(dioceseA)},
			chain: ScopeChain{},
			want:  false,
		},
		{
			name:  "parish admin matches own parish",
			p:     Principal{Role: constants.RoleParishAdmin, ParishID: ptr(parishA)},
			chain: chainA,
			want:  true,
		},
		{
			name:  "parish admin blocked on sibling parish",
			p:     Principal{Role: constants.RoleParishAdmin, ParishID: ptr(parishB)},
			chain: chainA,
			want:  false,
		},
		{
			name:  "parish admin cannot manage a bare diocese",
			p:     Principal{Role: constants.RoleParishAdmin, ParishID: ptr(parishA)},
			chain: ScopeChain{DioceseID: dioceseA},
			want:  false,
		},
		{
			name:  "community coordinator matches own community",
			p:     Principal{Role: constants.RoleCommunityCoordinator, CommunityID: ptr(communityA)},
			chain: chainA,
			want:  true,
		},
		{
			name:  "community coordinator blocked on sibling community",
			p:     Principal{Role: constants.RoleCommunityCoordinator, CommunityID: ptr(communityB)},
			chain: chainA,
			want:  false,
		},
		{
			name:  "pastoral coordinator passes via coordinated pastoral",
			p:     Principal{Role: constants.RolePastoralCoordinator, CommunityID: ptr(communityA)},
			chain: ScopeChain{DioceseID: dioceseA, ParishID: parishA, CommunityID: communityA, CoordinatedPastoral: true},
			want:  true,
		},
		{
			name:  "pastoral coordinator cannot manage without the pastoral link",
			p:     Principal{Role: constants.RolePastoralCoordinator, CommunityID: ptr(communityA)},
			chain: chainA,
			want:  false,
		},
		{
			name:  "pastoral coordinator views community events as peer",
			p:     Principal{Role: constants.RolePastoralCoordinator, CommunityID: ptr(communityA)},
			chain: ScopeChain{DioceseID: dioceseA, ParishID: parishA, CommunityID: communityA, AllowCommunityPeers: true},
			want:  true,
		},
		{
			name:  "volunteer blocked from manage even in own community",
			p:     Principal{Role: constants.RoleVolunteer, CommunityID: ptr(communityA)},
			chain: chainA,
			want:  false,
		},
		{
			name:  "volunteer sees own community when peers allowed",
			p:     Principal{Role: constants.RoleVolunteer, CommunityID: ptr(communityA)},
			chain: ScopeChain{DioceseID: dioceseA, ParishID: parishA, CommunityID: communityA, AllowCommunityPeers: true},
			want:  true,
		},
		{
			name:  "faithful blocked across communities even with peers allowed",
			p:     Principal{Role: constants.RoleFaithful, CommunityID: ptr(communityB)},
			chain: ScopeChain{DioceseID: dioceseA, ParishID: parishA, CommunityID: communityA, AllowCommunityPeers: true},
			want:  false,
		},
		{
			name:  "self-owned resource always passes",
			p:     Principal{Role: constants.RoleFaithful},
			chain: ScopeChain{SelfOwned: true},
			want:  true,
		},
		{
			name:  "unknown role fails closed",
			p:     Principal{Role: "SUPERUSER"},
			chain: chainA,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decide(tt.p, tt.chain))
		})
	}
}

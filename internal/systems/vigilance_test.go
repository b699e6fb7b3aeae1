package systems

import (
	"testing"

	"majesty-server/internal/domain"
)

func TestFollowUpPolicyTable(t *testing.T) {
	cases := []struct {
		name string
		def  *domain.ActionDefinition
		want domain.TargetPolicy
	}{
		{
			name: "enemy follow-up targets the trigger actor",
			def:  &domain.ActionDefinition{ID: domain.ActionMelee, TargetType: domain.TargetEnemy, RequiresTarget: true},
			want: domain.PolicyTriggerActor,
		},
		{
			name: "ally follow-up targets self",
			def:  &domain.ActionDefinition{ID: domain.ActionAid, TargetType: domain.TargetAlly, RequiresTarget: true},
			want: domain.PolicySelf,
		},
		{
			name: "any target-requiring follow-up defaults to trigger actor",
			def:  &domain.ActionDefinition{ID: domain.ActionShoot, TargetType: domain.TargetAny, RequiresTarget: true},
			want: domain.PolicyTriggerActor,
		},
		{
			name: "targetless follow-up resolves to none",
			def:  &domain.ActionDefinition{ID: domain.ActionRally, TargetType: domain.TargetAny, RequiresTarget: false},
			want: domain.PolicyNone,
		},
		{
			name: "absent follow-up resolves to none",
			def:  nil,
			want: domain.PolicyNone,
		},
	}

	for _, tc := range cases {
		if got := FollowUpPolicy(tc.def); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

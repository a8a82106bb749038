package tactics

import "github.com/nstehr/pitchside/model"

// Dispatcher maps each role to its policy through a fixed table.
type Dispatcher struct {
	policies [model.RoleCount]Policy
}

// NewDispatcher returns the default 4-4-1-1 role table.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{}
	d.policies[model.RoleGoalkeeper] = PolicyFunc(goalkeeper)
	d.policies[model.RoleCentreBack] = PolicyFunc(centreBack)
	d.policies[model.RoleLeftBack] = fullBack(-1)
	d.policies[model.RoleRightBack] = fullBack(1)
	d.policies[model.RoleDefensiveMidfield] = PolicyFunc(defensiveMidfielder)
	d.policies[model.RoleCentralMidfield] = PolicyFunc(centralMidfielder)
	d.policies[model.RoleLeftMidfield] = wideMidfielder(-1)
	d.policies[model.RoleRightMidfield] = wideMidfielder(1)
	d.policies[model.RoleAttackingMidfield] = PolicyFunc(attackingMidfielder)
	d.policies[model.RoleCentreForward] = PolicyFunc(centreForward)
	return d
}

// Lookup returns the policy for role, false when the role is unknown.
func (d *Dispatcher) Lookup(role model.Role) (Policy, bool) {
	if !role.Valid() {
		return nil, false
	}
	p := d.policies[role]
	return p, p != nil
}

// Decide runs the policy for role; unknown roles idle.
func (d *Dispatcher) Decide(role model.Role, s *Situation) model.Action {
	p, ok := d.Lookup(role)
	if !ok {
		return model.ActionIdle
	}
	return p.Decide(s)
}

package domain

// Permission rules between an acting key and a target key. These three
// functions are the complete authorization surface: every disclosure or
// mutation in the key lifecycle consults exactly one of them before acting.
// All are pure and total; callers translate a false verdict into a rejection.

// CanViewValue reports whether an actor with actorRole may be shown the secret
// value of target. Developer keys are never revealed through this path, not
// even to other developers; a developer sees their own value because it is
// their own, not through CanViewValue.
func CanViewValue(actorRole Role, target *Key) bool {
	if target.Role == RoleDeveloper {
		return false
	}
	switch actorRole {
	case RoleDeveloper:
		return true
	case RoleCreator:
		return target.Role == RoleAdmin || target.Role == RoleUser
	case RoleAdmin:
		return target.Role == RoleUser
	default:
		return false
	}
}

// CanDelete reports whether an actor with actorRole and secret actorValue may
// delete target. No actor may delete their own active key, and developer keys
// are never deletable. The role compatibility rule is the same as CanViewValue.
func CanDelete(actorRole Role, actorValue string, target *Key) bool {
	if target.Value == actorValue {
		return false
	}
	return CanViewValue(actorRole, target)
}

// CanAssignRole reports whether an actor with actorRole may create a key
// carrying requested. User and admin keys may be created by any actor that
// reaches the creation path; creator keys only by creators and developers;
// developer keys are never assignable through creation.
func CanAssignRole(actorRole Role, requested Role) bool {
	switch requested {
	case RoleUser, RoleAdmin:
		return true
	case RoleCreator:
		return actorRole == RoleCreator || actorRole == RoleDeveloper
	default:
		return false
	}
}

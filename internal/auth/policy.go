package auth

// CanView decides whether viewer may see a resource owned by owner. The
// rules apply in order: owners always see their own resources, public
// owners are visible to anyone, and otherwise the viewer must appear in the
// owner's friend list. friendsOfOwner must be the logins the owner added
// (edges owner→viewer); the check is directional on purpose, since friend
// adds only ever create one edge.
func CanView(viewer, owner string, ownerPublic bool, friendsOfOwner []string) bool {
	if viewer == owner {
		return true
	}
	if ownerPublic {
		return true
	}
	for _, friend := range friendsOfOwner {
		if friend == viewer {
			return true
		}
	}
	return false
}

package animation

// ComposePlayers reduces a list of players to exactly one. Zero players
// yield a no-op player that is already done, one player is returned as is,
// and two or more are wrapped in a group player. The result is never nil.
func ComposePlayers(players []Player) Player {
	switch len(players) {
	case 0:
		player := NewNoopPlayer(0, 0)
		player.Finish()
		return player
	case 1:
		return players[0]
	default:
		return NewGroupPlayer(players)
	}
}

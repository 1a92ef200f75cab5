package adventure

// CombatInput carries the effective stats of both sides. User attack and
// defense include equipment bonuses.
type CombatInput struct {
	UserHealth     int
	UserAttack     int
	UserDefense    int
	MonsterHealth  int
	MonsterAttack  int
	MonsterDefense int
}

// CombatOutcome is the deterministic resolution of one encounter.
type CombatOutcome struct {
	Victory     bool
	TurnsToWin  int // turns the user needs to drop the monster
	TurnsToLose int // turns the monster needs to drop the user
}

// ResolveCombat approximates a turn-by-turn fight in closed form: each side
// deals a fixed per-turn damage and whoever needs fewer turns wins. A tie
// favors the player.
func ResolveCombat(in CombatInput) CombatOutcome {
	userDamage := in.UserAttack - in.MonsterDefense/2
	if userDamage < 1 {
		userDamage = 1
	}
	monsterDamage := in.MonsterAttack - in.UserDefense/2
	if monsterDamage < 1 {
		monsterDamage = 1
	}

	turnsToWin := ceilDiv(in.MonsterHealth, userDamage)
	turnsToLose := ceilDiv(in.UserHealth, monsterDamage)

	return CombatOutcome{
		Victory:     turnsToWin <= turnsToLose,
		TurnsToWin:  turnsToWin,
		TurnsToLose: turnsToLose,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

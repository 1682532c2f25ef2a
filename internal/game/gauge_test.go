package game

import "testing"

func TestDamageOnePointPerPeriod(t *testing.T) {
	g := newTestGame(t)
	fillBelow(g, CellHazard)

	for want := 99; want >= 95; want-- {
		g.Update(CommandNone, 10*ms)
		if g.Life() != want {
			t.Fatalf("Life() = %d, expected %d", g.Life(), want)
		}
		if sounds := g.DrainSounds(); count(sounds, SoundDamage) != 1 {
			t.Fatalf("sounds = %v, expected one %s", sounds, SoundDamage)
		}
	}

	gauge := g.Gauge()
	if !gauge.Damaging || !gauge.Flashing {
		t.Errorf("gauge = %+v, expected an active damage episode", gauge)
	}
	if !g.Player().Flashing {
		t.Error("player should flash while damaged")
	}

	g.player.Invulnerable = true
	g.player.InvulnStart = g.Now()
	for i := 0; i < 5; i++ {
		g.Update(CommandNone, 10*ms)
		if g.Life() != 95 {
			t.Fatalf("Life() = %d while invulnerable, expected 95", g.Life())
		}
	}
	gauge = g.Gauge()
	if gauge.Damaging || gauge.Flashing || gauge.Red {
		t.Errorf("gauge = %+v, expected torn down", gauge)
	}
	if g.Player().Flashing {
		t.Error("player still flashing after damage stopped")
	}
}

func TestDamageCatchUp(t *testing.T) {
	g := newTestGame(t)
	fillBelow(g, CellHazard)

	g.Update(CommandNone, 250*ms)
	if g.Life() != 75 {
		t.Errorf("Life() = %d after 250ms on a hazard, expected 75", g.Life())
	}
	if sounds := g.DrainSounds(); count(sounds, SoundDamage) != 25 {
		t.Errorf("expected 25 damage cues, got %d", count(sounds, SoundDamage))
	}
}

func TestDamageEpisodeRestartsCleanly(t *testing.T) {
	g := newTestGame(t)
	fillBelow(g, CellHazard)

	g.Update(CommandNone, 9*ms)
	if g.Life() != 100 {
		t.Fatalf("Life() = %d, expected 100", g.Life())
	}

	fillBelow(g, CellGround)
	g.Update(CommandNone, 0)
	if g.gauge.damage.Elapsed() != 0 {
		t.Errorf("damage accumulator = %v after teardown, expected 0", g.gauge.damage.Elapsed())
	}

	fillBelow(g, CellHazard)
	g.Update(CommandNone, 9*ms)
	if g.Life() != 100 {
		t.Errorf("Life() = %d, partial progress leaked into a new episode", g.Life())
	}
}

func TestGaugePulse(t *testing.T) {
	g := newTestGame(t)
	fillBelow(g, CellHazard)

	g.Update(CommandNone, 60*ms)
	if !g.Gauge().Red {
		t.Error("gauge should turn red after one pulse period")
	}
	g.Update(CommandNone, 60*ms)
	if g.Gauge().Red {
		t.Error("gauge should turn back after two pulse periods")
	}
}

func TestLifeNeverBelowZero(t *testing.T) {
	g := newTestGame(t)
	fillBelow(g, CellHazard)
	g.life = 3

	g.Update(CommandNone, 10000*ms)
	if g.Life() != 0 {
		t.Errorf("Life() = %d, expected 0", g.Life())
	}
	if !g.IsOver() {
		t.Error("game should be over at zero life")
	}
}

func TestNoDamageCueWithoutLifeLost(t *testing.T) {
	g := newTestGame(t)
	fillBelow(g, CellHazard)
	g.life = 0

	g.updateDamage(50 * ms)
	if g.Life() != 0 {
		t.Errorf("Life() = %d, expected 0", g.Life())
	}
	if sounds := g.DrainSounds(); count(sounds, SoundDamage) != 0 {
		t.Errorf("sounds = %v, expected no %s once life is exhausted", sounds, SoundDamage)
	}
}

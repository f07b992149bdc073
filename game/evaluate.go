package game

import (
	"math"
	"strings"
)

// ScoreDelta returns the points awarded for solving word with timeLeft
// seconds remaining: floor(len * base * mult) + floor(timeLeft * mult).
func ScoreDelta(word string, perLetterBase int, d Difficulty, timeLeft float64) int {
	mult := d.Multiplier()
	wordScore := math.Floor(float64(len(word)) * float64(perLetterBase) * mult)
	timeBonus := math.Floor(timeLeft * mult)
	return int(wordScore) + int(timeBonus)
}

// evaluateTray runs the word check after a release. A round has one outcome:
// once Solved is set a repeated match could not score again, and once Failed
// is set a late release during the grace delay cannot turn the fail into a
// solve.
func evaluateTray(f *Frame) {
	w := f.World
	round := w.Round()
	if round.Solved || round.Failed {
		return
	}

	trayWord := w.TrayWord()
	if trayWord == "" || !strings.EqualFold(trayWord, round.Word) {
		return
	}

	round.Solved = true
	round.CelebrateLeft = w.Config().CelebrateSeconds

	session := w.Session()
	session.Score += ScoreDelta(round.Word, w.Config().PerLetterBase, round.Difficulty, round.TimeLeft)
	session.WordsCompleted++
	if session.Score > session.HighScore {
		session.HighScore = session.Score
	}

	f.Effects.Cue(CueSuccess)
	for _, t := range w.TrayTiles() {
		w.SpawnBurst(t.X, t.Y)
	}
}

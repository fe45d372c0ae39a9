package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/silabario/internal/exercise"
	"github.com/at-ishikawa/silabario/internal/syllable"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

// player asks a single exercise and keeps the score.
type player struct {
	*InteractiveCLI
	pool  []vocabulary.Word
	mode  exercise.Mode
	rng   *rand.Rand
	score exercise.Score
}

// GameCLI plays one kind of game over a batch of words.
type GameCLI struct {
	player
	kind  exercise.Kind
	queue []vocabulary.Word
	total int
}

// NewGameCLI picks up to batchSize words from pool.
func NewGameCLI(base *InteractiveCLI, kind exercise.Kind, pool []vocabulary.Word, batchSize int, mode exercise.Mode, rng *rand.Rand) (*GameCLI, error) {
	if len(pool) == 0 {
		return nil, exercise.ErrNoWords
	}
	queue := exercise.PickWords(pool, batchSize, rng)
	return &GameCLI{
		player: player{
			InteractiveCLI: base,
			pool:           pool,
			mode:           mode,
			rng:            rng,
		},
		kind:  kind,
		queue: queue,
		total: len(queue),
	}, nil
}

// Score returns the answers counted so far.
func (g *GameCLI) Score() exercise.Score {
	return g.score
}

func (g *GameCLI) Session(ctx context.Context) error {
	if len(g.queue) == 0 {
		g.printSummary()
		return errEnd
	}
	word := g.queue[0]

	g.println()
	_, _ = g.bold.Fprintf(g.stdoutWriter, "%s · Palabra %d de %d\n", g.kind.Title(), g.total-len(g.queue)+1, g.total)
	if err := g.play(ctx, g.kind, word); err != nil {
		return err
	}
	g.queue = g.queue[1:]
	return nil
}

// RandomSessionCLI plays a planned list of rounds with a random game each.
type RandomSessionCLI struct {
	player
	playerName string
	rounds     []exercise.Round
	current    int
}

func NewRandomSessionCLI(base *InteractiveCLI, playerName string, pool []vocabulary.Word, rounds int, mode exercise.Mode, rng *rand.Rand) (*RandomSessionCLI, error) {
	plan, err := exercise.NewRandomSession(pool, rounds, rng)
	if err != nil {
		return nil, fmt.Errorf("exercise.NewRandomSession() > %w", err)
	}
	return &RandomSessionCLI{
		player: player{
			InteractiveCLI: base,
			pool:           pool,
			mode:           mode,
			rng:            rng,
		},
		playerName: playerName,
		rounds:     plan,
	}, nil
}

func (s *RandomSessionCLI) Score() exercise.Score {
	return s.score
}

func (s *RandomSessionCLI) Session(ctx context.Context) error {
	if s.current == 0 {
		s.printf("¡Hola, %s! Vamos a jugar %d rondas.\n", s.playerName, len(s.rounds))
	}
	if s.current >= len(s.rounds) {
		s.printSummary()
		_, _ = color.New(color.FgGreen, color.Bold).Fprintf(s.stdoutWriter, "¡Sesión completada, %s!\n", s.playerName)
		return errEnd
	}
	round := s.rounds[s.current]

	s.println()
	_, _ = s.bold.Fprintf(s.stdoutWriter, "Ronda %d de %d · %s\n", round.Number, len(s.rounds), round.Kind.Title())
	if err := s.play(ctx, round.Kind, round.Word); err != nil {
		return err
	}
	s.current++
	return nil
}

func (p *player) play(ctx context.Context, kind exercise.Kind, word vocabulary.Word) error {
	switch kind {
	case exercise.KindDetective:
		return p.playDetective(ctx, word)
	case exercise.KindClassifier:
		return p.playClassifier(ctx, word)
	case exercise.KindComplete:
		return p.playComplete(ctx, word)
	case exercise.KindLab:
		return p.playLab(ctx, word)
	}
	return fmt.Errorf("unknown game %q", kind)
}

func (p *player) feedback(correct bool, success, retry string) {
	p.score.Record(correct)
	if correct {
		p.printf("✅ ")
		_, _ = color.New(color.FgGreen).Fprintln(p.stdoutWriter, success)
		return
	}
	p.printf("❌ ")
	_, _ = color.New(color.FgRed).Fprintln(p.stdoutWriter, retry)
}

func (p *player) playDetective(ctx context.Context, word vocabulary.Word) error {
	d := exercise.NewDetective(word)
	for {
		p.println("¿Cuál es la sílaba tónica?")
		for i, s := range word.Syllables {
			p.printf("  [%d] %s", i+1, s)
		}
		p.println()
		p.printf("Número: ")

		answer, err := p.readLine()
		if err != nil {
			return err
		}
		index, err := strconv.Atoi(answer)
		if err != nil || index < 1 || index > len(word.Syllables) {
			p.printf("Escribe un número del 1 al %d.\n", len(word.Syllables))
			continue
		}
		correct := d.Check(index - 1)
		p.feedback(correct, "¡Correcto!", "¡Casi! Inténtalo de nuevo.")
		if correct {
			PrintAnalysis(p.stdoutWriter, word)
			return nil
		}
	}
}

func (p *player) askCategory() (syllable.Category, error) {
	for {
		p.println("¿Qué tipo de palabra es?")
		for i, c := range syllable.Categories() {
			p.printf("  [%d] %s", i+1, categoryColor(c).Sprint(c.Label()))
		}
		p.println()
		p.printf("Tipo: ")

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if category, ok := parseCategoryAnswer(answer); ok {
			return category, nil
		}
		p.println("Escribe 1, 2, 3 o el nombre del tipo.")
	}
}

func parseCategoryAnswer(answer string) (syllable.Category, bool) {
	categories := syllable.Categories()
	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(categories) {
			return "", false
		}
		return categories[n-1], true
	}
	category, err := syllable.ParseCategory(answer)
	if err != nil {
		return "", false
	}
	return category, true
}

func (p *player) playClassifier(ctx context.Context, word vocabulary.Word) error {
	c := exercise.NewClassifier(word)
	for {
		_, _ = p.bold.Fprintf(p.stdoutWriter, "%s\n", word.Word)
		category, err := p.askCategory()
		if err != nil {
			return err
		}
		correct := c.Check(category)
		p.feedback(correct, "✨ ¡Correcto! ✨", "Ups... ¡Prueba otra vez!")
		if correct {
			PrintAnalysis(p.stdoutWriter, word)
			return nil
		}
	}
}

func (p *player) playComplete(ctx context.Context, word vocabulary.Word) error {
	c := exercise.NewComplete(word, p.pool, p.mode, p.rng)

	for c.Stage() == exercise.StageTonic {
		p.printf("Completa la palabra: %s\n", strings.Join(c.Masked(), " - "))
		options := c.Options()
		if c.Mode() == exercise.ModeChoice {
			for i, o := range options {
				p.printf("  [%d] %s", i+1, o)
			}
			p.println()
			p.printf("Sílaba: ")
		} else {
			p.printf("Escribe la sílaba que falta: ")
		}

		answer, err := p.readLine()
		if err != nil {
			return err
		}
		if answer == "" {
			continue
		}
		if c.Mode() == exercise.ModeChoice {
			if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
				answer = options[n-1]
			}
		}

		before := c.Mode()
		correct, err := c.AnswerTonic(answer)
		if err != nil {
			return fmt.Errorf("AnswerTonic() > %w", err)
		}
		p.feedback(correct, "¡Bien! Ahora clasifícala.", "Esa no es. ¡Prueba otra vez!")
		if before == exercise.ModeInput && c.Mode() == exercise.ModeChoice {
			p.println("Te ayudo: elige una de estas opciones.")
		}
	}

	for c.Stage() == exercise.StageClassify {
		category, err := p.askCategory()
		if err != nil {
			return err
		}
		correct, err := c.AnswerCategory(category)
		if err != nil {
			return fmt.Errorf("AnswerCategory() > %w", err)
		}
		p.feedback(correct, "✨ ¡Correcto! ✨", "Ups... ¡Prueba otra vez!")
	}
	PrintAnalysis(p.stdoutWriter, word)
	return nil
}

func (p *player) playLab(ctx context.Context, word vocabulary.Word) error {
	lab := exercise.NewLab(word, p.rng)
	shuffled := lab.Shuffled()
	for {
		p.println("¡Ordena las sílabas para formar la palabra!")
		for i, s := range shuffled {
			p.printf("  [%d] %s", i+1, s)
		}
		p.println()
		p.printf("Orden (por ejemplo: %s): ", exampleOrder(len(shuffled)))

		answer, err := p.readLine()
		if err != nil {
			return err
		}
		order, err := parseOrder(answer)
		if err != nil {
			p.println(err.Error())
			continue
		}
		correct, err := lab.Check(order)
		if err != nil {
			p.println(err.Error())
			continue
		}
		p.feedback(correct, fmt.Sprintf("¡Correcto! %s", word.Word), "Ese orden no forma la palabra. ¡Prueba otra vez!")
		if correct {
			return nil
		}
	}
}

// parseOrder reads 1-based positions separated by spaces or commas.
func parseOrder(answer string) ([]int, error) {
	fields := strings.FieldsFunc(answer, func(r rune) bool {
		return r == ' ' || r == ','
	})
	order := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		order = append(order, n-1)
	}
	return order, nil
}

func exampleOrder(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(n - i)
	}
	return strings.Join(parts, " ")
}

func (p *player) printSummary() {
	p.println()
	p.printf("Aciertos: %s  Fallos: %s\n",
		color.GreenString("%d", p.score.Correct),
		color.RedString("%d", p.score.Wrong))
}

package env

import (
	"fmt"
	"log"
	"os"
	"promo_backend/internal/config"
	"promo_backend/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	defaultsPathEnvName = "DEFAULTS_PATH"
	defaultsPath        = "defaults.yaml"
)

// yaml-представление стартовой конфигурации
type defaultsFile struct {
	ShufflePrizes             []prizeYAML `yaml:"shuffle_prizes"`
	SpinPrizes                []prizeYAML `yaml:"spin_prizes"`
	ShuffleWinningProbability float64     `yaml:"shuffle_winning_probability"`
	SpinWinningProbability    float64     `yaml:"spin_winning_probability"`
	LoseLabel                 string      `yaml:"lose_label"`
	Colors                    struct {
		Primary   *string `yaml:"primary"`
		Secondary *string `yaml:"secondary"`
	} `yaml:"colors"`
	Texts struct {
		Am textsYAML `yaml:"am"`
		En textsYAML `yaml:"en"`
	} `yaml:"texts"`
}

type prizeYAML struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Amount   int     `yaml:"amount"`
	IsActive bool    `yaml:"is_active"`
	Image    *string `yaml:"image"`
	Kind     string  `yaml:"kind"`
}

type textsYAML struct {
	Win  *string `yaml:"win"`
	Lose *string `yaml:"lose"`
}

type defaultsConfig struct {
	settings *model.Settings
}

// NewDefaultsConfigFromYAML читает стартовую конфигурацию игр из yaml.
// Отсутствие файла не ошибка — берутся встроенные значения
func NewDefaultsConfigFromYAML() (config.DefaultsConfig, error) {
	path := os.Getenv(defaultsPathEnvName)
	if len(path) == 0 {
		path = defaultsPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("defaults file %s not readable, using built-in defaults", path)
		return &defaultsConfig{settings: model.DefaultSettings()}, nil
	}

	var file defaultsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse defaults yaml: %w", err)
	}

	settings := &model.Settings{
		ShufflePrizes:             toPrizes(file.ShufflePrizes),
		SpinPrizes:                toPrizes(file.SpinPrizes),
		ShuffleWinningProbability: file.ShuffleWinningProbability,
		SpinWinningProbability:    file.SpinWinningProbability,
		LoseLabel:                 file.LoseLabel,
		Colors: model.Colors{
			Primary:   file.Colors.Primary,
			Secondary: file.Colors.Secondary,
		},
		Texts: model.Texts{
			Am: model.LocalizedTexts{Win: file.Texts.Am.Win, Lose: file.Texts.Am.Lose},
			En: model.LocalizedTexts{Win: file.Texts.En.Win, Lose: file.Texts.En.Lose},
		},
	}
	settings.Normalize()

	return &defaultsConfig{settings: settings}, nil
}

func (cfg *defaultsConfig) Defaults() *model.Settings {
	return cfg.settings
}

func toPrizes(in []prizeYAML) []model.Prize {
	prizes := make([]model.Prize, 0, len(in))
	for _, p := range in {
		prizes = append(prizes, model.Prize{
			ID:       p.ID,
			Name:     p.Name,
			Amount:   p.Amount,
			IsActive: p.IsActive,
			Image:    p.Image,
			Kind:     model.SegmentKind(p.Kind),
		})
	}
	return prizes
}

package bootstrap

import (
	"fmt"

	"github.com/Aleph-Alpha/collection-init/v1/vectordb"
)

// Metadata keys every default collection carries.
const (
	KeyDescription = "description"
	KeyDataTypes   = "data_types"
	KeyUsage       = "usage"
	KeyCategory    = "category"
)

// DefaultCollections returns the collections of the trading game in
// creation order. Every call returns a fresh copy.
func DefaultCollections() []vectordb.CollectionSpec {
	return []vectordb.CollectionSpec{
		{
			Name: "bitcoin_historical_data",
			Metadata: map[string]string{
				KeyDescription: "Historical Bitcoin price data, market indicators, and trading volumes for game analysis",
				KeyDataTypes:   "price,volume,market_cap,technical_indicators,timestamps",
				KeyUsage:       "Store and query historical Bitcoin data for game scenarios and backtesting",
				KeyCategory:    "market_data",
			},
		},
		{
			Name: "user_portfolios",
			Metadata: map[string]string{
				KeyDescription: "User trading positions, portfolio performance, and transaction history",
				KeyDataTypes:   "user_id,positions,balance,transactions,performance_metrics",
				KeyUsage:       "Track user portfolio state and trading activity across game sessions",
				KeyCategory:    "user_data",
			},
		},
		{
			Name: "game_achievements",
			Metadata: map[string]string{
				KeyDescription: "User achievements, progress tracking, rewards, and milestone completions",
				KeyDataTypes:   "user_id,achievement_type,completion_date,rewards,progress",
				KeyUsage:       "Store and retrieve user progress for gamification and reward systems",
				KeyCategory:    "gamification",
			},
		},
		{
			Name: "market_analysis",
			Metadata: map[string]string{
				KeyDescription: "Technical analysis results, market predictions, and trading signals",
				KeyDataTypes:   "analysis_type,predictions,confidence_scores,trading_signals,timeframes",
				KeyUsage:       "Store AI-generated market analysis and trading recommendations for the game",
				KeyCategory:    "analytics",
			},
		},
		{
			Name: "educational_content",
			Metadata: map[string]string{
				KeyDescription: "Trading tutorials, educational materials, tips, and strategy guides",
				KeyDataTypes:   "content_type,difficulty_level,topics,media_urls,learning_objectives",
				KeyUsage:       "Provide educational content to help users learn trading concepts and strategies",
				KeyCategory:    "education",
			},
		},
	}
}

// validateSpecs rejects invalid or duplicate names before the store is touched.
func validateSpecs(specs []vectordb.CollectionSpec) error {
	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		if err := vectordb.ValidateName(s.Name); err != nil {
			return err
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("duplicate collection name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

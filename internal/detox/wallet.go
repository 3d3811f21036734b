package detox

import (
	"github.com/google/uuid"

	"github.com/unplugapp/unplug/internal/models"
)

// CoinsPerCompletedDay is the fixed earn rate for detox coins.
const CoinsPerCompletedDay = 10

// WalletSummary is the derived coin read model. There is no stored ledger:
// total coins come from completed days, availability subtracts redeemed
// reward costs. Completed days here deliberately count every log on record,
// not just the active plan's date range ("lifetime" earnings).
type WalletSummary struct {
	TotalCoins     int
	AvailableCoins int
	RedeemedCount  int
}

// Wallet computes the current coin position.
func (s *Service) Wallet() (WalletSummary, error) {
	logs, err := s.store.GetLogs()
	if err != nil {
		return WalletSummary{}, err
	}

	completed := 0
	for i := range logs {
		if IsLogCompleted(&logs[i]) {
			completed++
		}
	}

	rewards, err := s.store.GetCustomRewards()
	if err != nil {
		return WalletSummary{}, err
	}

	summary := WalletSummary{TotalCoins: completed * CoinsPerCompletedDay}
	spent := 0
	for _, r := range rewards {
		if r.Redeemed {
			spent += r.Cost
			summary.RedeemedCount++
		}
	}
	summary.AvailableCoins = summary.TotalCoins - spent

	return summary, nil
}

// AddCustomReward stores a new redeemable item. Input is validated at this
// boundary; the ledger itself never re-checks.
func (s *Service) AddCustomReward(title string, cost int, description string) (models.CustomReward, error) {
	reward := models.CustomReward{
		ID:          uuid.New().String(),
		Title:       title,
		Cost:        cost,
		Description: description,
		CreatedAt:   s.now(),
	}
	if err := reward.Validate(); err != nil {
		return models.CustomReward{}, err
	}

	rewards, err := s.store.GetCustomRewards()
	if err != nil {
		return models.CustomReward{}, err
	}
	rewards = append(rewards, reward)
	if err := s.store.SaveCustomRewards(rewards); err != nil {
		return models.CustomReward{}, err
	}
	return reward, nil
}

// CustomRewards returns every stored reward, redeemed or not.
func (s *Service) CustomRewards() ([]models.CustomReward, error) {
	return s.store.GetCustomRewards()
}

// RedeemReward marks a reward redeemed and stamps the redemption time. A
// reward already redeemed keeps its original timestamp; the call is an
// idempotent no-op. Balance gating is the caller's concern, not the
// ledger's.
func (s *Service) RedeemReward(id string) (models.CustomReward, error) {
	rewards, err := s.store.GetCustomRewards()
	if err != nil {
		return models.CustomReward{}, err
	}

	for i := range rewards {
		if rewards[i].ID != id {
			continue
		}
		if rewards[i].Redeemed {
			return rewards[i], nil
		}

		rewards[i].Redeemed = true
		redeemedAt := s.now()
		rewards[i].RedeemedDate = &redeemedAt

		if err := s.store.SaveCustomRewards(rewards); err != nil {
			return models.CustomReward{}, err
		}
		return rewards[i], nil
	}

	return models.CustomReward{}, ErrRewardNotFound
}

// ResetRedemptions marks every reward unredeemed, releasing their coins.
func (s *Service) ResetRedemptions() error {
	rewards, err := s.store.GetCustomRewards()
	if err != nil {
		return err
	}
	for i := range rewards {
		rewards[i].Redeemed = false
		rewards[i].RedeemedDate = nil
	}
	return s.store.SaveCustomRewards(rewards)
}

package labels

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "attribute.hit", "Hit strength")
	message.SetString(lang, "attribute.energy", "Energy capacity")
	message.SetString(lang, "attribute.regen", "Energy regeneration")
	message.SetString(lang, "attribute.cw", "Clockwise spin speed")
	message.SetString(lang, "attribute.ccw", "Counter-clockwise speed")

	message.SetString(lang, "group.speed", "Speed")
	message.SetString(lang, "group.defense", "Defense")
	message.SetString(lang, "group.attack", "Attack")

	message.SetString(lang, "policy.normal", "Normal")
	message.SetString(lang, "policy.balance", "Balanced (each 15–40%%)")
	message.SetString(lang, "policy.bias_medium", "Medium bias")
	message.SetString(lang, "policy.bias_big", "Large bias")

	message.SetString(lang, HintGroupKey, "Minimum for group “%s”: %s%% (the remaining %s%% is spread randomly across all skills).")
	message.SetString(lang, CostKey, "Cost: %s points")
	message.SetString(lang, BalanceKey, "Balance: %s points")
	message.SetString(lang, SumCheckKey, "Sum: %s%%")
}

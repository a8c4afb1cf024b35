package labels

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, "attribute.hit", "Сила удара")
	message.SetString(lang, "attribute.energy", "Количество энергии")
	message.SetString(lang, "attribute.regen", "Скорость восстановления энергии")
	message.SetString(lang, "attribute.cw", "Скорость вращения стрелки")
	message.SetString(lang, "attribute.ccw", "Скорость движения против стрелки")

	message.SetString(lang, "group.speed", "Скорость")
	message.SetString(lang, "group.defense", "Защита")
	message.SetString(lang, "group.attack", "Нападение")

	message.SetString(lang, "policy.normal", "Обычная")
	message.SetString(lang, "policy.balance", "Баланс (каждый 15–40%%)")
	message.SetString(lang, "policy.bias_medium", "Средний уклон")
	message.SetString(lang, "policy.bias_big", "Большой уклон")

	message.SetString(lang, HintGroupKey, "Минимум для группы “%s”: %s%% (остальное %s%% распределится случайно по всем навыкам).")
	message.SetString(lang, CostKey, "Стоимость: %s БУ")
	message.SetString(lang, BalanceKey, "Баланс: %s БУ")
	message.SetString(lang, SumCheckKey, "Сумма: %s%%")
}

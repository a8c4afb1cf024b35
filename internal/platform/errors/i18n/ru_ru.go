package i18n

var ruRUMessages = map[Code]string{
	CodeUnknown:                      "Произошла непредвиденная ошибка",
	CodeDistributionInvalidRange:     "Параметры распределения вне допустимого диапазона",
	CodeDistributionBoundsInfeasible: "Границы долей не дают в сумме 100%",
	CodeDistributionInvalidParts:     "Для распределения нужен хотя бы один навык",
	CodeDistributionInvalidGroup:     "Группа «{{.Group}}» содержит неверные навыки",
	CodePolicyUnknown:                "Неизвестный тип генерации «{{.Policy}}»",
	CodeGroupUnknown:                 "Неизвестная группа «{{.Group}}»",
	CodeBalanceInsufficient:          "Не хватает БУ: нужно {{.Cost}}, есть {{.Balance}}",
}

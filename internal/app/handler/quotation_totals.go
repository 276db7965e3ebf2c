package handler

import (
	"backend/internal/app/ds"
	"backend/internal/app/dto"
)

// Расчет итогов сметы.
//
// Клиент может прислать либо уже посчитанные subtotal/total (они сохраняются
// как есть, без сверки с позициями), либо только позиции с subtotal=0 —
// тогда сервер сам выводит subtotal и total. Нулевой subtotal при непустых
// позициях всегда трактуется как "посчитай за меня": выразить настоящий
// нулевой subtotal с позициями нельзя, это осознанное поведение контракта.

// itemsSubtotal возвращает сумму total по всем позициям (0 для пустого списка)
func itemsSubtotal(items []dto.QuotationItemRequest) float64 {
	sum := 0.0
	for _, item := range items {
		if item.Total != nil {
			sum += *item.Total
		}
	}
	return sum
}

// resolveTotals возвращает итоговые subtotal и total для создаваемой сметы:
// total = subtotal - discount + tax выводится только при subtotal=0 и
// непустой сумме позиций, иначе значения клиента сохраняются без изменений
func resolveTotals(req *dto.CreateQuotationRequest) (float64, float64) {
	computed := itemsSubtotal(req.Items)
	if req.Subtotal == 0 && computed != 0 {
		return computed, computed - req.Discount + req.Tax
	}
	return req.Subtotal, req.Total
}

// buildQuotationItems переводит позиции запроса в записи таблицы позиций;
// количество по умолчанию 1
func buildQuotationItems(items []dto.QuotationItemRequest) []ds.QuotationItem {
	result := make([]ds.QuotationItem, len(items))
	for i, item := range items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		result[i] = ds.QuotationItem{
			PackageID: item.PackageID,
			Name:      item.Name,
			Quantity:  quantity,
			UnitPrice: *item.UnitPrice,
			Total:     *item.Total,
			Position:  i,
		}
	}
	return result
}

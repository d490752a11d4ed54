package google

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/settlement"
)

// parseParticipants converts a values matrix with a "name" column and an
// optional "upi_id" column. Rows with a blank name are skipped.
func parseParticipants(values [][]interface{}) ([]models.Participant, error) {
	if len(values) == 0 {
		return nil, nil
	}
	headers := toStrings(values[0])
	colName := indexOf(headers, "name")
	colAddress := indexOf(headers, "upi_id", "payment_address")
	if colName == -1 {
		return nil, fmt.Errorf("unexpected participants header: missing name; got headers=%v", headers)
	}

	var participants []models.Participant
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		name := strings.TrimSpace(safeGet(row, colName))
		if name == "" {
			continue
		}
		participants = append(participants, models.Participant{
			Name:           name,
			PaymentAddress: strings.TrimSpace(safeGet(row, colAddress)),
		})
	}
	return participants, nil
}

// parseExpenses converts a values matrix with description, amount, payer
// and involved columns. The involved cell holds ";"-joined names. Rows
// without an amount are skipped.
func parseExpenses(values [][]interface{}) ([]models.Expense, error) {
	if len(values) == 0 {
		return nil, nil
	}
	headers := toStrings(values[0])
	colDesc := indexOf(headers, "description")
	colAmount := indexOf(headers, "amount")
	colPayer := indexOf(headers, "payer")
	colInvolved := indexOf(headers, "involved")
	if colAmount == -1 || colPayer == -1 || colInvolved == -1 {
		var missing []string
		if colAmount == -1 {
			missing = append(missing, "amount")
		}
		if colPayer == -1 {
			missing = append(missing, "payer")
		}
		if colInvolved == -1 {
			missing = append(missing, "involved")
		}
		return nil, fmt.Errorf("unexpected expenses header: missing %s; got headers=%v", strings.Join(missing, ","), headers)
	}

	var expenses []models.Expense
	for i := 1; i < len(values); i++ {
		raw := values[i]
		if colAmount >= len(raw) || strings.TrimSpace(fmt.Sprint(raw[colAmount])) == "" {
			continue
		}
		amount, err := parseAmount(raw[colAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		row := toStrings(raw)
		expenses = append(expenses, models.Expense{
			Description: strings.TrimSpace(safeGet(row, colDesc)),
			Amount:      amount,
			Payer:       strings.TrimSpace(safeGet(row, colPayer)),
			Involved:    settlement.SplitInvolved(safeGet(row, colInvolved)),
		})
	}
	return expenses, nil
}

// parseAmount accepts unformatted numbers as well as text such as "₹1,200.50".
// Currency symbols, spaces and thousands separators are dropped. Text that is
// not otherwise a plain decimal number, like "1.200,50" or "12-3", is rejected.
func parseAmount(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	}

	raw := fmt.Sprint(v)
	invalid := fmt.Errorf("invalid amount %q", raw)

	var b strings.Builder
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if seenDot {
				return decimal.Zero, invalid
			}
			seenDot = true
			b.WriteRune(r)
		case r == ',':
			// Grouping separators only appear in the integer part
			if seenDot {
				return decimal.Zero, invalid
			}
		case r == '-':
			if b.Len() > 0 {
				return decimal.Zero, invalid
			}
			b.WriteRune(r)
		case unicode.IsSpace(r), unicode.Is(unicode.Sc, r):
		default:
			return decimal.Zero, invalid
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, invalid
	}
	return d, nil
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		switch t := v.(type) {
		case string:
			out[i] = t
		case float64:
			out[i] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}

// indexOf finds the first header matching any of names, case-insensitively.
func indexOf(headers []string, names ...string) int {
	for i, h := range headers {
		h = strings.TrimSpace(h)
		for _, name := range names {
			if strings.EqualFold(h, name) {
				return i
			}
		}
	}
	return -1
}

func safeGet(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

package core

// Summarize computes the summary aggregate in a single pass over the
// transactions: positive amounts accumulate into income, negative
// amounts into expenses (as absolute values), and zero amounts count
// toward neither side. Balance is income minus expenses.
func Summarize(txs []Transaction) Summary {
	var income, expenses int64
	for _, t := range txs {
		switch {
		case t.Amount.Cents > 0:
			income += t.Amount.Cents
		case t.Amount.Cents < 0:
			expenses += t.Amount.Abs().Cents
		}
	}
	return Summary{
		Balance:  Money{Cents: income - expenses},
		Income:   Money{Cents: income},
		Expenses: Money{Cents: expenses},
	}
}

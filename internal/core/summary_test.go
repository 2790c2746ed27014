package core

import "testing"

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.Balance.Cents != 0 || sum.Income.Cents != 0 || sum.Expenses.Cents != 0 {
		t.Fatalf("empty ledger expected all zeros, got %+v", sum)
	}
}

func TestSummarizeMixedLedger(t *testing.T) {
	txs := []Transaction{
		{Title: "Salary", Amount: Money{Cents: 100000}, Category: "job"},
		{Title: "Groceries", Amount: Money{Cents: -15075}, Category: "food"},
	}
	sum := Summarize(txs)
	if sum.Income.Cents != 100000 {
		t.Fatalf("income expected 100000, got %d", sum.Income.Cents)
	}
	if sum.Expenses.Cents != 15075 {
		t.Fatalf("expenses expected 15075, got %d", sum.Expenses.Cents)
	}
	if sum.Balance.Cents != 84925 {
		t.Fatalf("balance expected 84925, got %d", sum.Balance.Cents)
	}
}

func TestSummarizeProperties(t *testing.T) {
	cases := [][]Transaction{
		{{Amount: Money{Cents: 100}}},
		{{Amount: Money{Cents: -100}}},
		{{Amount: Money{Cents: 250}}, {Amount: Money{Cents: -999}}, {Amount: Money{Cents: 1}}},
		{{Amount: Money{Cents: 0}}}, // zero counts toward neither side
	}
	for i, txs := range cases {
		sum := Summarize(txs)
		if sum.Income.Cents < 0 {
			t.Fatalf("case %d: income negative", i)
		}
		if sum.Expenses.Cents < 0 {
			t.Fatalf("case %d: expenses negative", i)
		}
		if sum.Income.Cents-sum.Expenses.Cents != sum.Balance.Cents {
			t.Fatalf("case %d: income - expenses != balance", i)
		}
	}
}

func TestSummarizeZeroAmountCountsNowhere(t *testing.T) {
	sum := Summarize([]Transaction{{Amount: Money{Cents: 0}}})
	if sum.Income.Cents != 0 || sum.Expenses.Cents != 0 || sum.Balance.Cents != 0 {
		t.Fatalf("zero amount should not contribute, got %+v", sum)
	}
}

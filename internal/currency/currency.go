// Package currency computes the salary figures the dashboard shows next to
// a job's raw salary: annualized/monthly in the same currency, or converted
// into the user's local currency at a live exchange rate.
package currency

import (
	"fmt"
	"math"
	"strings"
)

// Display is one computed salary figure. A nil Display means the figure is
// withheld: conversion disabled, no local currency configured, or the
// exchange rate was unavailable. Withheld is never rendered as zero.
type Display struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
	Value  string `json:"value"`
}

// SalaryDisplay normalizes a salary for display.
//
// Same currency: a per-annum figure is shown per month (÷12) and a per-month
// figure per annum (×12). Different currency: the amount is normalized to
// monthly, multiplied by rate, and always labeled per month regardless of
// the source cadence. rate is nil when no job→local rate is known.
func SalaryDisplay(kind string, amount float64, perAnnum bool, jobCurrency, localCurrency string, convert bool, rate *float64) *Display {
	if !convert || localCurrency == "" {
		return nil
	}

	if strings.EqualFold(jobCurrency, localCurrency) {
		if perAnnum {
			monthly := int64(math.Round(amount / 12))
			return &Display{
				Label:  fmt.Sprintf("Salary %s in %s/Month", kind, localCurrency),
				Amount: monthly,
				Value:  fmt.Sprintf("%d %s/Month", monthly, localCurrency),
			}
		}
		annual := int64(math.Round(amount * 12))
		return &Display{
			Label:  fmt.Sprintf("Salary %s in %s/Annum", kind, localCurrency),
			Amount: annual,
			Value:  fmt.Sprintf("%d %s/Annum", annual, localCurrency),
		}
	}

	if rate == nil {
		return nil
	}
	monthly := amount
	if perAnnum {
		monthly = amount / 12
	}
	converted := int64(math.Round(monthly * *rate))
	return &Display{
		Label:  fmt.Sprintf("Salary %s in %s/Month", kind, localCurrency),
		Amount: converted,
		Value:  fmt.Sprintf("%d %s/Month", converted, localCurrency),
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNetPay(t *testing.T) {
	s := Salary{BasicPay: 30000, HRA: 5000, Allowances: 2500, Deductions: 1200}
	s.CalculateNetPay()
	assert.Equal(t, 36300.0, s.NetPay)
}

func TestCalculateNetPayDeductionsOnly(t *testing.T) {
	s := Salary{BasicPay: 20000, Deductions: 20000}
	s.CalculateNetPay()
	assert.Equal(t, 0.0, s.NetPay)
}

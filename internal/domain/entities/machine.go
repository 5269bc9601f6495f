package entities

// MachineCategory splits the catalog between PagSeguro machines (direct
// acquirer) and sub-acquirer machines. The wire values are the Portuguese
// terms used by the storefront.

type MachineCategory string

const (
	CategoryPagSeguro   MachineCategory = "pagseguro"
	CategorySubAcquirer MachineCategory = "subadquirente"
)

func (c MachineCategory) Valid() bool {
	return c == CategoryPagSeguro || c == CategorySubAcquirer
}

// PricingKind tags the two catalog pricing shapes. An entry is either flat
// priced or tier priced, never both.
type PricingKind string

const (
	PricingFlat   PricingKind = "flat"
	PricingTiered PricingKind = "tiered"
)

// PriceTier is one quantity band of a tiered schedule. MaxQty nil means the
// band is open-ended.
type PriceTier struct {
	MinQty    int
	MaxQty    *int
	UnitPrice float64
}

func (t PriceTier) Matches(quantity int) bool {
	if quantity < t.MinQty {
		return false
	}
	return t.MaxQty == nil || quantity <= *t.MaxQty
}

const (
	MinQuantity = 1
	MaxQuantity = 1000

	MinInstallments     = 2
	MaxInstallments     = 12
	DefaultInstallments = 12
)

// ClampQuantity truncates and clamps a quantity into [MinQuantity, MaxQuantity].
// The pricing engine never errors on a bad quantity, it normalizes.
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

// ClampInstallments clamps a requested installment count into
// [MinInstallments, MaxInstallments].
func ClampInstallments(n int) int {
	if n < MinInstallments {
		return MinInstallments
	}
	if n > MaxInstallments {
		return MaxInstallments
	}
	return n
}

// Machine is one catalog offering.
//
// Pricing is a tagged variant:
//   - PricingFlat: FlatUnitPrice applies for any quantity;
//     FlatInstallmentUnitPrice, when set, is the fixed per-unit installment.
//   - PricingTiered: Tiers resolve the unit price by quantity band;
//     AutoInstallment derives the installment as unit price / Installments.
type Machine struct {
	Name     string
	Category MachineCategory
	Pricing  PricingKind

	FlatUnitPrice            float64
	FlatInstallmentUnitPrice *float64

	Tiers           []PriceTier
	AutoInstallment bool

	Installments int
}

func (m Machine) InstallmentsOrDefault() int {
	if m.Installments > 0 {
		return m.Installments
	}
	return DefaultInstallments
}

// UnitPrice resolves the per-unit price for the given quantity.
//
// Tiered entries scan bands in ascending order and fall back to the last band
// when none matches; that fallback tolerates catalog gaps and is not an error.
func (m Machine) UnitPrice(quantity int) float64 {
	q := ClampQuantity(quantity)

	if m.Pricing == PricingTiered && len(m.Tiers) > 0 {
		for _, tier := range m.Tiers {
			if tier.Matches(q) {
				return tier.UnitPrice
			}
		}
		return m.Tiers[len(m.Tiers)-1].UnitPrice
	}
	return m.FlatUnitPrice
}

// InstallmentUnitPrice resolves the per-unit installment value.
//
// A caller-requested installment count (clamped to [2,12]) overrides the
// catalog and recomputes the installment from the unit price. Otherwise the
// flat catalog figure wins, then the auto-installment derivation. When none
// applies the machine is not offered in installments and ok is false.
//
// Division is exact; rounding to currency precision is a presentation concern.
func (m Machine) InstallmentUnitPrice(quantity int, requested *int) (float64, bool) {
	if requested != nil {
		n := ClampInstallments(*requested)
		return m.UnitPrice(quantity) / float64(n), true
	}

	if m.FlatInstallmentUnitPrice != nil {
		return *m.FlatInstallmentUnitPrice, true
	}

	if m.AutoInstallment {
		unit := m.UnitPrice(quantity)
		n := m.InstallmentsOrDefault()
		if unit <= 0 || n <= 0 {
			return 0, false
		}
		return unit / float64(n), true
	}

	return 0, false
}

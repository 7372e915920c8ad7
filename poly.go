// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clwe

// poly is a single ring element: n coefficients of Z_q[x]/(x^n+1).
//
// Coefficients are not always canonically reduced; normalize canonicalizes
// them into [0, q). Whether a poly holds a "time" or "ntt"-domain
// representation is a design invariant tracked by which functions a
// caller chooses to call, not a runtime-checked field: this package's own
// call graph only ever feeds ntt-domain polys to baseMul and time-domain
// polys to compress (pack, by contrast, also stores the ntt-domain t̂ and
// ŝ of a key), so the discipline is enforced by code review
// and tests, not by a tag. A poly owns its coefficient array outright;
// assignment copies it (it is a value type), so no two polys ever alias
// the same backing array.
type poly [n]int16

// add sets p to a+b, coefficient-wise. Valid regardless of NTT domain.
func (p *poly) add(a, b *poly) {
	for i := range p {
		p[i] = a[i] + b[i]
	}
}

// sub sets p to a-b, coefficient-wise. Valid regardless of NTT domain.
func (p *poly) sub(a, b *poly) {
	for i := range p {
		p[i] = a[i] - b[i]
	}
}

// scalarMul sets p to a scaled by the plain-scale scalar c.
func (p *poly) scalarMul(a *poly, c int16) {
	cMont := toMont(c)
	for i := range p {
		p[i] = montReduce(int32(cMont) * int32(a[i]))
	}
}

// negate sets p to -a, coefficient-wise.
func (p *poly) negate(a *poly) {
	for i := range p {
		p[i] = -a[i]
	}
}

// normalize reduces every coefficient into the canonical range [0, q).
func (p *poly) normalize() {
	for i := range p {
		p[i] = condSubQ(barrettReduce(p[i]))
	}
}

// infNorm returns the infinity-norm of p after centering each coefficient
// around 0: max_i |center(p[i])| where center folds [0,q) into
// (-q/2, q/2]. Nothing in the KEM/PKE path calls it; it is the bound a
// signature scheme built on this ring would check rejection sampling
// against.
func (p *poly) infNorm() int16 {
	var max int16
	q := int16(q)
	for _, c := range p {
		c = condSubQ(barrettReduce(c))
		centered := c
		if centered > q/2 {
			centered = q - centered
		}
		if centered > max {
			max = centered
		}
	}
	return max
}

// mul sets p to the ring product a*b: ntt_inverse(basemul(ntt_forward(a),
// ntt_forward(b))). a and b must be in time-domain; they are copied
// before transforming so the caller's values are untouched.
func (p *poly) mul(a, b *poly) {
	ah, bh := *a, *b
	defaultEngine.forward(&ah)
	defaultEngine.forward(&bh)
	defaultEngine.baseMul(p, &ah, &bh)
	defaultEngine.inverse(p)
}

// ntt transforms p from time-domain to ntt-domain in place.
func (p *poly) ntt() { defaultEngine.forward(p) }

// invNTT transforms p from ntt-domain to time-domain in place.
func (p *poly) invNTT() { defaultEngine.inverse(p) }

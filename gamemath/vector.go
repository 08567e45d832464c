package gamemath

import "github.com/go-gl/mathgl/mgl64"

// MinLength is the length below which a vector is treated as zero.
const MinLength = 1e-9

// NormalizeOr returns v scaled to unit length, or fallback when v has no
// usable length. fallback is returned as given.
func NormalizeOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < MinLength {
		return fallback
	}
	return v.Mul(1 / l)
}

// Direction returns the unit vector pointing from `from` to `to`, or fallback
// when the two points coincide.
func Direction(from, to, fallback mgl64.Vec3) mgl64.Vec3 {
	return NormalizeOr(to.Sub(from), fallback)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// Advance moves pos along dir (re-normalized) by speed*dt.
func Advance(pos, dir mgl64.Vec3, speed, dt float64, fallback mgl64.Vec3) mgl64.Vec3 {
	return pos.Add(NormalizeOr(dir, fallback).Mul(speed * dt))
}

// Lerp interpolates between a and b; t is not clamped.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

package geometry

import (
	"github.com/spectra/go-raytracer/pkg/core"
)

// HittableList is an ordered collection of hittables that answers
// nearest-hit queries across all of its members
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates an empty list
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends an object to the list
func (hl *HittableList) Add(object core.Hittable) {
	hl.Objects = append(hl.Objects, object)
}

// Hit finds the closest intersection across all members within (tMin, tMax).
// Shrinking tMax to the closest hit so far guarantees only strictly closer
// hits can override; ties go to the first object in iteration order.
func (hl *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range hl.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

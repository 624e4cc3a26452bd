package core

import "math/rand"

// RandomInUnitSphere generates a random point inside the unit sphere by
// rejection sampling: draw from the [-1,1]³ cube and retry until the point
// falls inside the sphere (~2 draws expected).
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed unit vector
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInHemisphere generates a random point in the unit hemisphere
// oriented along the given normal
func RandomInHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	p := RandomInUnitSphere(random)
	if p.Dot(normal) > 0 {
		return p
	}
	return p.Negate()
}

// RandomInUnitDisk generates a random point in the unit disk on the z=0
// plane (for lens/depth-of-field sampling)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

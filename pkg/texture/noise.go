package texture

import (
	"math"
	"math/rand"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

const pointCount = 256

// defaultTurbulenceDepth is the number of octaves summed by Turbulence
const defaultTurbulenceDepth = 7

// Perlin is a gradient-noise generator over a fixed random lattice
type Perlin struct {
	ranvec [pointCount]core.Vec3
	permX  [pointCount]int
	permY  [pointCount]int
	permZ  [pointCount]int
}

// NewPerlin builds the lattice from random; the same seed gives the same noise
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.ranvec {
		v := core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		p.ranvec[i] = core.Unit(v)
	}
	p.permX = generatePerm(random)
	p.permY = generatePerm(random)
	p.permZ = generatePerm(random)
	return p
}

func generatePerm(random *rand.Rand) [pointCount]int {
	var perm [pointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := pointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns smoothed gradient noise in roughly [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X() - math.Floor(point.X())
	v := point.Y() - math.Floor(point.Y())
	w := point.Z() - math.Floor(point.Z())

	i := int(math.Floor(point.X()))
	j := int(math.Floor(point.Y()))
	k := int(math.Floor(point.Z()))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranvec[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

func trilinearInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	// Hermite smoothing removes the grid artifacts of plain trilinear blending
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise with halving weights
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Mul(2)
	}
	return math.Abs(accum)
}

// Noise is a marble-like texture: gray level 0.5·(1 + sin(scale·z + 10·turb(p)))
type Noise struct {
	perlin *Perlin
	Scale  float64
}

// NewNoise creates a marble texture with its own lattice seeded from seed
func NewNoise(scale float64, seed int64) *Noise {
	return &Noise{perlin: NewPerlin(rand.New(rand.NewSource(seed))), Scale: scale}
}

func (n *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	gray := 0.5 * (1 + math.Sin(n.Scale*p.Z()+10*n.perlin.Turbulence(p, defaultTurbulenceDepth)))
	return core.NewVec3(gray, gray, gray)
}

func (n *Noise) Upper() core.Vec3 {
	return core.NewVec3(1, 1, 1)
}

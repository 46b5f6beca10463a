package engine

// Material holds the shading parameters of a surface. Albedo weights are
// {diffuse, specular, reflect, refract}; only the first two feed the current
// shading model, the others are carried for future bounce effects.
type Material struct {
	Diffuse         Color
	Specular        float64
	Albedo          [4]float64
	RefractiveIndex float64
	Emission        Color
	IsEmissive      bool
}

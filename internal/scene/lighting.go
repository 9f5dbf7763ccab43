package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Light is a directional light with an ambient term and a Blinn-Phong highlight.
type Light struct {
	Dir              [3]float32 // direction towards the light
	Color            [3]float32
	Ambient          [4]float32
	Intensity        float32
	SpecularPower    float32
	SpecularStrength float32
}

// DefaultLight comes from above-right, warm white, with a dim ambient so unlit faces keep their hue.
func DefaultLight() Light {
	return Light{
		Dir:              [3]float32{0.5, 1, 0.7},
		Color:            [3]float32{1.0, 0.98, 0.95},
		Ambient:          [4]float32{0.3, 0.3, 0.32, 1.0},
		Intensity:        0.75,
		SpecularPower:    48,
		SpecularStrength: 0.25,
	}
}

// loadLitShader compiles the lit shader. Raylib falls back to its default shader when
// compilation fails, so callers check rl.IsShaderValid.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

// apply uploads the light and eye position to shader. Values are copied into local
// slices before crossing into C.
func (l Light) apply(shader rl.Shader, eye rl.Vector3) {
	if !rl.IsShaderValid(shader) {
		return
	}
	vec3 := func(name string, v [3]float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValueV(shader, loc, []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3, 1)
		}
	}
	float := func(name string, v float32) {
		if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
			rl.SetShaderValue(shader, loc, []float32{v}, rl.ShaderUniformFloat)
		}
	}
	vec3("viewPos", [3]float32{eye.X, eye.Y, eye.Z})
	vec3("lightDir", l.Dir)
	vec3("lightColor", l.Color)
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		a := l.Ambient
		rl.SetShaderValueV(shader, loc, a[:], rl.ShaderUniformVec4, 1)
	}
	float("lightIntensity", l.Intensity)
	float("specularPower", l.SpecularPower)
	float("specularStrength", l.SpecularStrength)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 world = matModel * vec4(vertexPosition, 1.0);
  fragPosition = world.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * world;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec4 ambient;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 n = normalize(fragNormal);
  vec3 l = normalize(lightDir);
  vec3 v = normalize(viewPos - fragPosition);
  float ndotl = max(dot(n, l), 0.0);
  vec3 diffuse = colDiffuse.rgb * ndotl * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  float spec = ndotl > 0.0 ? pow(max(dot(n, normalize(l + v)), 0.0), specularPower) * specularStrength : 0.0;
  finalColor = vec4(amb + diffuse + lightColor * spec, colDiffuse.a);
}
`
)

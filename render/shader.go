// SPDX-License-Identifier: GPL-2.0-or-later
package render

const (
	vertexSourceMeshDrawer = `
#version 330
layout (location = 0) in vec3 vposition;
layout (location = 1) in vec3 vnormal;
layout (location = 2) in vec2 vtexcoord;
out vec3 WorldPos;
out vec3 Normal;
out vec2 Texcoord;
uniform mat4 projection;
uniform mat4 view;
uniform mat4 model;

void main() {
	vec4 world = model * vec4(vposition, 1.0);
	WorldPos = world.xyz;
	Normal = mat3(model) * vnormal;
	Texcoord = vtexcoord;
	gl_Position = projection * view * world;
}
` + "\x00"

	fragmentSourceMeshDrawer = `
#version 330
in vec3 WorldPos;
in vec3 Normal;
in vec2 Texcoord;
out vec4 frag_color;
uniform sampler2D tex;
uniform int useTexture;
uniform vec4 baseColor;
uniform vec3 ambient;
uniform int lightCount;
uniform vec3 lightPos[8];
uniform vec3 lightColor[8];
uniform float lightRadius[8];

void main() {
	vec4 color = baseColor;
	if (useTexture != 0) {
		color = texture(tex, Texcoord);
	}
	vec3 n = normalize(Normal);
	vec3 light = ambient;
	for (int i = 0; i < lightCount; i++) {
		vec3 d = lightPos[i] - WorldPos;
		float dist = length(d);
		float att = clamp(1.0 - dist / lightRadius[i], 0.0, 1.0);
		float diff = max(dot(n, d / max(dist, 1e-4)), 0.0);
		light += lightColor[i] * diff * att;
	}
	frag_color = vec4(color.rgb * light, color.a);
}
` + "\x00"

	vertexSourceFlatDrawer = `
#version 330
layout (location = 0) in vec3 vposition;
uniform mat4 projection;
uniform mat4 view;

void main() {
	gl_Position = projection * view * vec4(vposition, 1.0);
}
` + "\x00"

	fragmentSourceFlatDrawer = `
#version 330
out vec4 frag_color;
uniform vec4 flatColor;

void main() {
	frag_color = flatColor;
}
` + "\x00"

	vertexSourceScreenDrawer = `
#version 330
layout (location = 0) in vec2 position;

void main() {
	gl_Position = vec4(position, 0.0, 1.0);
}
` + "\x00"

	fragmentSourceScreenDrawer = `
#version 330
out vec4 frag_color;
uniform vec4 screenColor;

void main() {
	frag_color = screenColor;
}
` + "\x00"

	vertexSourceParticleDrawer = `
#version 330
layout (location = 0) in vec3 vposition;
layout (location = 1) in vec2 vtexcoord;
layout (location = 2) in vec4 vcolor;
out vec2 Texcoord;
out vec4 InColor;
uniform mat4 projection;
uniform mat4 view;

void main() {
	Texcoord = vtexcoord;
	InColor = vcolor;
	gl_Position = projection * view * vec4(vposition, 1.0);
}
` + "\x00"

	fragmentSourceParticleDrawer = `
#version 330
in vec2 Texcoord;
in vec4 InColor;
out vec4 frag_color;

void main() {
	vec2 d = Texcoord * 2.0 - 1.0;
	float r = dot(d, d);
	if (r > 1.0)
		discard;
	frag_color = vec4(InColor.rgb, InColor.a * (1.0 - r));
}
` + "\x00"
)

package graphics

// LitVertexShader transforms to clip space and passes world-space position,
// normal and uv to the fragment stage.
const LitVertexShader = `#version 410 core
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec2 textureCoordinate;

out vec3 vertexNormal;
out vec3 vertexFragmentPos;
out vec2 vertexTextureCoordinate;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	gl_Position = projection * view * model * vec4(position, 1.0);
	vertexFragmentPos = vec3(model * vec4(position, 1.0));
	vertexNormal = mat3(transpose(inverse(model))) * normal;
	vertexTextureCoordinate = textureCoordinate;
}
`

// LitFragmentShader is Phong (ambient 0.5, specular 1.0, shininess 30)
// modulated by the bound texture.
const LitFragmentShader = `#version 410 core
in vec3 vertexNormal;
in vec3 vertexFragmentPos;
in vec2 vertexTextureCoordinate;

out vec4 fragmentColor;

uniform vec3 lightColor;
uniform vec3 lightPos;
uniform vec3 viewPosition;
uniform sampler2D uTexture;
uniform vec2 uvScale;

void main() {
	vec3 ambient = 0.5 * lightColor;

	vec3 norm = normalize(vertexNormal);
	vec3 lightDirection = normalize(lightPos - vertexFragmentPos);
	float impact = max(dot(norm, lightDirection), 0.0);
	vec3 diffuse = impact * lightColor;

	vec3 viewDir = normalize(viewPosition - vertexFragmentPos);
	vec3 reflectDir = reflect(-lightDirection, norm);
	float specularComponent = pow(max(dot(viewDir, reflectDir), 0.0), 30.0);
	vec3 specular = 1.0 * specularComponent * lightColor;

	vec4 textureColor = texture(uTexture, vertexTextureCoordinate * uvScale);
	vec3 phong = (ambient + diffuse + specular) * textureColor.xyz;

	fragmentColor = vec4(phong, 1.0);
}
`

const LampVertexShader = `#version 410 core
layout(location = 0) in vec3 position;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	gl_Position = projection * view * model * vec4(position, 1.0);
}
`

const LampFragmentShader = `#version 410 core
out vec4 fragmentColor;

void main() {
	fragmentColor = vec4(1.0);
}
`

// FontVertexShader takes (x, y, u, v) in pixel space
const FontVertexShader = `#version 410 core
layout(location = 0) in vec4 vertex;
out vec2 texCoords;

uniform mat4 projection;

void main() {
	gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
	texCoords = vertex.zw;
}
`

// FontFragmentShader uses the red channel of the atlas as coverage
const FontFragmentShader = `#version 410 core
in vec2 texCoords;
out vec4 color;

uniform sampler2D text;
uniform vec3 textColor;

void main() {
	float alpha = texture(text, texCoords).r;
	color = vec4(textColor, alpha);
}
`

package barmesh

// Solid color shader. Normals and UVs are bound but unused: bars are flat and untextured.
const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uMVP;

void main() {
    gl_Position = uMVP * vec4(aPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
uniform vec4 uColor;

out vec4 FragColor;

void main() {
    FragColor = uColor;
}
`

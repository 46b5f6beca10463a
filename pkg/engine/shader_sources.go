package engine

// Shader sources for blitting the CPU framebuffer to the window

const blitVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
`

const blitFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D frameTexture;

void main() {
    FragColor = texture(frameTexture, TexCoord);
}
`

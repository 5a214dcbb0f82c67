package engine

// Sprite shaders: one textured quad per draw, placed by the model matrix
const spriteVertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 model;

out vec2 TexCoord;

void main() {
    gl_Position = model * vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
`

const spriteFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D spriteTexture;

void main() {
    vec4 texColor = texture(spriteTexture, TexCoord);
    if (texColor.a < 0.01) {
        discard;
    }
    FragColor = texColor;
}
`

// Text shaders: glyph atlas stored in the red channel, positions in pixels
const textVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

uniform mat4 projection;

out vec2 TexCoord;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
`

const textFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D glyphAtlas;
uniform vec3 textColor;

void main() {
    float coverage = texture(glyphAtlas, TexCoord).r;
    FragColor = vec4(textColor, coverage);
}
`

package emit

const cTemplate = `
#include <string.h>
#include <stdint.h>

const char *
{{.Ident}}(const char *key);

const char *
{{.Ident}}(const char *key)
{
    size_t len = strlen(key);
    size_t i;
    uint32_t u = 0;

    if (len > {{.MaxLen}})
        return NULL;

    for (i = 0; i < len; i++)
        u = (u << 8) | (uint8_t)key[i];

    switch (u) {
{{range .Entries}}    case {{.Key}}: return "{{.Escaped}}";
{{end}}
    default:
        return NULL;
    }
}
`

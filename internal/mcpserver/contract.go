package mcpserver

// NoteFormatContract describes the fragment formats that notes appended
// through termiLink can use, for LLM consumers of the MCP tools.
const NoteFormatContract = `# termiLink Note Format Contract

Notes appended through termiLink are single-line Markdown fragments added to
a daily note (named by date, e.g. ` + "`" + `Daily Notes/2025-03-14.md` + "`" + `) or to an
explicitly named file inside the vault.

## Format modes

Given content ` + "`" + `Test note` + "`" + `, timestamp ` + "`" + `14:30` + "`" + `, and tags ` + "`" + `important work` + "`" + `:

| Mode | Rendered fragment |
| --- | --- |
| plain | ` + "`" + `14:30 Test note #important #work` + "`" + ` |
| timestamp | ` + "`" + `**14:30** - Test note - #important #work` + "`" + ` |
| bullet | ` + "`" + `- 14:30 - Test note #important #work` + "`" + ` |
| task | ` + "`" + `- [ ] 14:30 - Test note #important #work` + "`" + ` |

## Rules

1. **Tags** are passed without the ` + "`" + `#` + "`" + ` prefix; termiLink adds it.
2. **Target files** are vault-relative paths ending in ` + "`" + `.md` + "`" + `. Paths that
   would escape the vault are repaired to a same-named file at the vault root.
3. **Daily notes** are created on first append with a ` + "`" + `date:` + "`" + ` frontmatter
   block. Files created via ` + "`" + `create_note` + "`" + ` get ` + "`" + `created:` + "`" + ` frontmatter.
4. **Encoding** is UTF-8 with a trailing newline.

## Example daily note after two appends

` + "```" + `markdown
---
date: 2025-03-14
---

**09:10** - morning planning #focus

**14:30** - shipped the release - #work
` + "```" + `
`

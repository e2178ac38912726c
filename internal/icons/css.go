package icons

// CSS styles inline icon SVGs. It is injected into the document head once
// per bootstrap.
const CSS = `:root{--fa-display:inline-block}
svg:not(:root).svg-inline--fa{overflow:visible;box-sizing:content-box}
.svg-inline--fa{display:var(--fa-display,inline-block);height:1em;overflow:visible;vertical-align:-.125em}
.fa-2xs{font-size:.625em;line-height:.1em;vertical-align:.225em}
.fa-xs{font-size:.75em;line-height:.08333em;vertical-align:.125em}
.fa-sm{font-size:.875em;line-height:.07143em;vertical-align:.05357em}
.fa-lg{font-size:1.25em;line-height:.05em;vertical-align:-.075em}
.fa-xl{font-size:1.5em;line-height:.04167em;vertical-align:-.125em}
.fa-2xl{font-size:2em;line-height:.03125em;vertical-align:-.1875em}
.fa-1x{font-size:1em}.fa-2x{font-size:2em}.fa-3x{font-size:3em}.fa-4x{font-size:4em}.fa-5x{font-size:5em}
.fa-6x{font-size:6em}.fa-7x{font-size:7em}.fa-8x{font-size:8em}.fa-9x{font-size:9em}.fa-10x{font-size:10em}
.fa-fw{text-align:center;width:1.25em}
.fa-spin{animation:fa-spin 2s linear infinite}
.fa-pulse{animation:fa-spin 1s steps(8) infinite}
@keyframes fa-spin{0%{transform:rotate(0deg)}100%{transform:rotate(360deg)}}
`

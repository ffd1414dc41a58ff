package constants

// Icon identifiers understood by the icon renderer. Navigation items refer to
// icons by these names.
const (
	IconHome     = "home"
	IconCellular = "cellular"
	IconSettings = "settings"
	IconPerson   = "person"
	IconBack     = "chevron-back"
)

// IconFillPlaceholder is replaced with the requested color before an icon is
// rasterized.
const IconFillPlaceholder = "currentColor"

// IconSVG holds the 24x24 vector source for each icon.
var IconSVG = map[string]string{
	IconHome: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path fill="currentColor" d="M3 11 L12 3 L21 11 L19 11 L19 21 L14 21 L14 15 L10 15 L10 21 L5 21 L5 11 Z"/>
</svg>`,

	IconCellular: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<rect fill="currentColor" x="3" y="15" width="3" height="6"/>
<rect fill="currentColor" x="8" y="11" width="3" height="10"/>
<rect fill="currentColor" x="13" y="7" width="3" height="14"/>
<rect fill="currentColor" x="18" y="3" width="3" height="18"/>
</svg>`,

	IconSettings: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path fill="currentColor" fill-rule="evenodd" d="M19.42 10.34 L22.10 10.58 L22.10 13.42 L19.42 13.66 L18.42 16.07 L20.15 18.14 L18.14 20.15 L16.07 18.42 L13.66 19.42 L13.42 22.10 L10.58 22.10 L10.34 19.42 L7.93 18.42 L5.86 20.15 L3.85 18.14 L5.58 16.07 L4.58 13.66 L1.90 13.42 L1.90 10.58 L4.58 10.34 L5.58 7.93 L3.85 5.86 L5.86 3.85 L7.93 5.58 L10.34 4.58 L10.58 1.90 L13.42 1.90 L13.66 4.58 L16.07 5.58 L18.14 3.85 L20.15 5.86 L18.42 7.93 Z M12 8.5 A3.5 3.5 0 1 0 12 15.5 A3.5 3.5 0 1 0 12 8.5 Z"/>
</svg>`,

	IconPerson: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<circle fill="currentColor" cx="12" cy="8" r="4"/>
<path fill="currentColor" d="M4 21 C4 16 8 14 12 14 C16 14 20 16 20 21 Z"/>
</svg>`,

	IconBack: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path fill="currentColor" d="M15.5 3 L17.5 5 L10.5 12 L17.5 19 L15.5 21 L6.5 12 Z"/>
</svg>`,
}

package console

// Prompt ends the banner and follows every reply on an interactive link.
const Prompt = "Enter option: "

const Menu = "*****************\n\r" +
	"*  pico-bridge USB Serial Interface\n\r" +
	"*  Send system or device interface commands\n\r" +
	"*  Menu:\n\r" +
	"*  menu - Print menu\n\r" +
	"*    - smi r phyAddr RegAddr\n\r" +
	"*    - smi w phyAddr RegAddr Data\n\r" +
	"*    - smi smiset frequency\n\r" +
	"*    - gpio r pin\n\r" +
	"*    - gpio w pin level\n\r" +
	"*    - cfg|jtag|spi r|w word...\n\r" +
	"*  Words are decimal or 0x-prefixed hex, at most four.\n\r" +
	"*****************\n\r" +
	Prompt
